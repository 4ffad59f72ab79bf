package model

import "time"

// LoadStatus is the lifecycle of one data load cycle.
type LoadStatus string

const (
	LoadStatusIdle    LoadStatus = "idle"
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusLoaded  LoadStatus = "loaded"
	LoadStatusError   LoadStatus = "error"
)

// Snapshot is the immutable in-memory result of a successful load.
// Callers must treat ETFs as read-only.
type Snapshot struct {
	AnalysisDate    string    // raw timestamp from the document
	AnalysisDisplay string    // medium-style date, or the raw string when unparseable
	AnalyzedAt      time.Time // zero when AnalysisDate could not be parsed
	ETFs            []ETF
	LoadedAt        time.Time
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ETFs)
}

// Find returns the record with the given ticker.
func (s *Snapshot) Find(ticker string) (ETF, bool) {
	if s == nil {
		return ETF{}, false
	}
	for _, e := range s.ETFs {
		if e.Ticker == ticker {
			return e, true
		}
	}
	return ETF{}, false
}

// LoadState is what the loader publishes after every transition.
// Snapshot is set only when Status is loaded; Error only when it is error.
type LoadState struct {
	Status   LoadStatus
	Snapshot *Snapshot
	Error    string
}

// LoadResult is the outcome of one call to Load: Loading, Loaded or Failed.
type LoadResult = LoadState
