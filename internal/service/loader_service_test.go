package service_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/data"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/testutil"
)

// TestDataLoaderService_Load tests the load cycle.
//
// WHY: Every view is derived from the loaded snapshot. A load must end in
// exactly one of loaded or error, and a failed load must be retryable.
func TestDataLoaderService_Load(t *testing.T) {
	t.Run("loads the bundled document", func(t *testing.T) {
		loader := service.NewDataLoaderService(data.Bundled(), zap.NewNop())

		res := loader.Load()

		if res.Status != model.LoadStatusLoaded {
			t.Fatalf("Expected loaded, got %s: %s", res.Status, res.Error)
		}
		if res.Snapshot.Len() != 8 {
			t.Errorf("Expected 8 ETFs, got %d", res.Snapshot.Len())
		}
		if res.Snapshot.AnalysisDisplay != "Dec 5, 2025" {
			t.Errorf("Expected 'Dec 5, 2025', got '%s'", res.Snapshot.AnalysisDisplay)
		}
		if res.Error != "" {
			t.Errorf("Expected no error, got '%s'", res.Error)
		}
	})

	t.Run("starts idle with no snapshot", func(t *testing.T) {
		loader := service.NewDataLoaderService(testutil.NewMemorySource(nil), zap.NewNop())

		if s := loader.State(); s.Status != model.LoadStatusIdle {
			t.Errorf("Expected idle, got %s", s.Status)
		}
		if _, err := loader.Snapshot(); !errors.Is(err, apperrors.ErrSnapshotNotLoaded) {
			t.Errorf("Expected ErrSnapshotNotLoaded, got %v", err)
		}
	})

	t.Run("missing resource fails with resource not found", func(t *testing.T) {
		loader := service.NewDataLoaderService(testutil.NewMemorySource(nil), zap.NewNop())

		res := loader.Load()

		if res.Status != model.LoadStatusError {
			t.Fatalf("Expected error, got %s", res.Status)
		}
		if res.Error != "resource not found" {
			t.Errorf("Expected 'resource not found', got '%s'", res.Error)
		}
		if res.Snapshot != nil {
			t.Error("Expected no snapshot after failure")
		}
	})

	t.Run("retry after fixing a malformed document succeeds", func(t *testing.T) {
		src := testutil.NewMemorySource([]byte(`{"date":"2025-12-05T10:00:00.000Z","recommendations":[{"name":"no ticker"}]}`))
		loader := service.NewDataLoaderService(src, zap.NewNop())

		res := loader.Load()
		if res.Status != model.LoadStatusError {
			t.Fatalf("Expected error, got %s", res.Status)
		}
		if !strings.Contains(res.Error, "recommendations[0].ticker") {
			t.Errorf("Expected error to name the missing field, got '%s'", res.Error)
		}

		src.Set(testutil.AnalysisJSON(t, testutil.TestAnalysisDate, testutil.NewETF("DIV").Build()))
		res = loader.Load()

		if res.Status != model.LoadStatusLoaded {
			t.Fatalf("Expected loaded on retry, got %s: %s", res.Status, res.Error)
		}
		if src.Reads() != 2 {
			t.Errorf("Expected 2 reads, got %d", src.Reads())
		}
		if _, err := loader.Snapshot(); err != nil {
			t.Errorf("Expected snapshot after retry, got %v", err)
		}
	})

	t.Run("unparseable analysis date is shown verbatim", func(t *testing.T) {
		src := testutil.NewMemorySource(testutil.AnalysisJSON(t, "not-a-date", testutil.NewETF("DIV").Build()))
		loader := service.NewDataLoaderService(src, zap.NewNop())

		res := loader.Load()

		if res.Status != model.LoadStatusLoaded {
			t.Fatalf("Expected loaded, got %s: %s", res.Status, res.Error)
		}
		if res.Snapshot.AnalysisDisplay != "not-a-date" {
			t.Errorf("Expected 'not-a-date', got '%s'", res.Snapshot.AnalysisDisplay)
		}
		if !res.Snapshot.AnalyzedAt.IsZero() {
			t.Errorf("Expected zero AnalyzedAt, got %v", res.Snapshot.AnalyzedAt)
		}
	})

	t.Run("concurrent loads all see a loaded result", func(t *testing.T) {
		loader := testutil.NewTestLoader(t, testutil.NewETF("DIV").Build())

		var wg sync.WaitGroup
		results := make([]model.LoadResult, 10)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = loader.Load()
			}()
		}
		wg.Wait()

		for i, res := range results {
			if res.Status != model.LoadStatusLoaded {
				t.Errorf("Load %d: expected loaded, got %s", i, res.Status)
			}
		}
	})
}

func TestDataLoaderService_LoadAsync(t *testing.T) {
	defer goleak.VerifyNone(t)

	loader := service.NewDataLoaderService(data.Bundled(), zap.NewNop())

	res := <-loader.LoadAsync()

	if res.Status != model.LoadStatusLoaded {
		t.Fatalf("Expected loaded, got %s: %s", res.Status, res.Error)
	}
	if got := loader.State().Status; got != model.LoadStatusLoaded {
		t.Errorf("Expected state loaded, got %s", got)
	}
}

func TestDataLoaderService_Subscribe(t *testing.T) {
	loader := service.NewDataLoaderService(data.Bundled(), zap.NewNop())
	changes, cancel := loader.Subscribe()

	loader.Load()

	// The loading transition was superseded before it was read.
	got := <-changes
	if got.Status != model.LoadStatusLoaded {
		t.Errorf("Expected latest state loaded, got %s", got.Status)
	}

	cancel()
	if _, ok := <-changes; ok {
		t.Error("Expected channel closed after cancel")
	}
	cancel()
}

func TestFormatAnalysisDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		zero bool
	}{
		{"2025-12-05T10:00:00.000Z", "Dec 5, 2025", false},
		{"2025-12-05T10:00:00Z", "Dec 5, 2025", false},
		{"2025-12-05T23:30:00-05:00", "Dec 6, 2025", false},
		{"not-a-date", "not-a-date", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, at := service.FormatAnalysisDate(tt.raw)
		if got != tt.want {
			t.Errorf("FormatAnalysisDate(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if at.IsZero() != tt.zero {
			t.Errorf("FormatAnalysisDate(%q) zero time = %v, want %v", tt.raw, at.IsZero(), tt.zero)
		}
	}
}
