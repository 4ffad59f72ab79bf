package service

import (
	"time"

	"go.uber.org/zap"
)

// StalenessService reports when the loaded analysis is older than a threshold.
// It only reads the loader's state; it never triggers a reload.
type StalenessService struct {
	loader     *DataLoaderService
	staleAfter time.Duration
	logger     *zap.Logger
	now        func() time.Time
}

// NewStalenessService creates a new StalenessService.
func NewStalenessService(loader *DataLoaderService, staleAfter time.Duration, logger *zap.Logger) *StalenessService {
	return &StalenessService{
		loader:     loader,
		staleAfter: staleAfter,
		logger:     logger,
		now:        time.Now,
	}
}

// Staleness returns the age of the loaded analysis and whether it exceeds the
// threshold. known is false when nothing is loaded or the analysis date did
// not parse.
func (s *StalenessService) Staleness() (age time.Duration, stale, known bool) {
	snapshot, err := s.loader.Snapshot()
	if err != nil || snapshot.AnalyzedAt.IsZero() {
		return 0, false, false
	}
	age = s.now().Sub(snapshot.AnalyzedAt)
	return age, age > s.staleAfter, true
}

// Check logs a warning when the loaded analysis is stale. It is run by the
// scheduler.
func (s *StalenessService) Check() {
	age, stale, known := s.Staleness()
	switch {
	case !known:
		s.logger.Debug("staleness check skipped, no dated analysis loaded")
	case stale:
		s.logger.Warn("analysis data is stale",
			zap.Duration("age", age.Round(time.Hour)),
			zap.Duration("stale_after", s.staleAfter))
	default:
		s.logger.Debug("analysis data is fresh", zap.Duration("age", age.Round(time.Hour)))
	}
}
