package service

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/data"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// DataLoaderService loads the analysis document and owns the resulting snapshot.
//
// Every state transition is published atomically: readers see either the
// previous state or the new one, never a partial update. Concurrent calls to
// Load share a single in-flight read.
type DataLoaderService struct {
	source data.Source
	logger *zap.Logger
	now    func() time.Time

	group singleflight.Group

	mu    sync.RWMutex
	state model.LoadState

	changes notifier[model.LoadState]
}

// NewDataLoaderService creates a loader for the given source. The loader
// starts idle; call Load or LoadAsync to read the document.
func NewDataLoaderService(source data.Source, logger *zap.Logger) *DataLoaderService {
	return &DataLoaderService{
		source: source,
		logger: logger,
		now:    time.Now,
		state:  model.LoadState{Status: model.LoadStatusIdle},
	}
}

// Load reads and decodes the document and returns the terminal state of the
// cycle, either loaded or error. Calling Load again after a failure retries
// from scratch; there is no backoff and no cached failure. A call made while
// another load is in flight waits for and returns that load's result.
func (l *DataLoaderService) Load() model.LoadResult {
	v, _, _ := l.group.Do("load", func() (any, error) {
		return l.load(), nil
	})
	return v.(model.LoadState)
}

// LoadAsync starts a load in the background. The returned channel receives
// the result once and is then closed.
func (l *DataLoaderService) LoadAsync() <-chan model.LoadResult {
	done := make(chan model.LoadResult, 1)
	go func() {
		done <- l.Load()
		close(done)
	}()
	return done
}

func (l *DataLoaderService) load() model.LoadState {
	l.publish(model.LoadState{Status: model.LoadStatusLoading})

	b, err := l.source.Read()
	if err != nil {
		reason := err.Error()
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			reason = apperrors.ErrResourceNotFound.Error()
		}
		l.logger.Error("failed to read analysis document",
			zap.String("source", l.source.Name()), zap.Error(err))
		return l.publish(model.LoadState{Status: model.LoadStatusError, Error: reason})
	}

	analysis, err := data.Decode(b)
	if err != nil {
		l.logger.Error("failed to decode analysis document",
			zap.String("source", l.source.Name()), zap.Error(err))
		return l.publish(model.LoadState{Status: model.LoadStatusError, Error: err.Error()})
	}

	display, analyzedAt := FormatAnalysisDate(analysis.Date)
	snapshot := &model.Snapshot{
		AnalysisDate:    analysis.Date,
		AnalysisDisplay: display,
		AnalyzedAt:      analyzedAt,
		ETFs:            analysis.Recommendations,
		LoadedAt:        l.now(),
	}

	l.logger.Info("analysis document loaded",
		zap.String("source", l.source.Name()),
		zap.String("analysis_date", display),
		zap.Int("etfs", snapshot.Len()))

	return l.publish(model.LoadState{Status: model.LoadStatusLoaded, Snapshot: snapshot})
}

func (l *DataLoaderService) publish(s model.LoadState) model.LoadState {
	l.mu.Lock()
	l.state = s
	l.mu.Unlock()

	l.changes.publish(s)
	return s
}

// State returns the current load state.
func (l *DataLoaderService) State() model.LoadState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Snapshot returns the loaded snapshot, or ErrSnapshotNotLoaded while the
// loader is idle, loading or failed.
func (l *DataLoaderService) Snapshot() (*model.Snapshot, error) {
	s := l.State()
	if s.Status != model.LoadStatusLoaded || s.Snapshot == nil {
		return nil, apperrors.ErrSnapshotNotLoaded
	}
	return s.Snapshot, nil
}

// Subscribe returns a channel receiving every subsequent state transition.
// Only the latest unread state is kept. Call cancel to unsubscribe.
func (l *DataLoaderService) Subscribe() (<-chan model.LoadState, func()) {
	return l.changes.subscribe()
}

// Source returns the name of the document the loader reads.
func (l *DataLoaderService) Source() string {
	return l.source.Name()
}

// FormatAnalysisDate renders an ISO-8601 timestamp, with or without
// fractional seconds, as a medium-style date ("Dec 5, 2025"). A timestamp
// that does not parse is returned verbatim with a zero time.
func FormatAnalysisDate(raw string) (string, time.Time) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw, time.Time{}
	}
	t = t.UTC()
	return t.Format(model.MediumDateLayout), t
}
