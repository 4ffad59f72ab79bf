package model

import "testing"

func TestCanAccess(t *testing.T) {
	t.Run("basic view is always available", func(t *testing.T) {
		if !CanAccess(CapabilityBasicView, false) || !CanAccess(CapabilityBasicView, true) {
			t.Error("Expected basicView for both tiers")
		}
	})

	t.Run("gated capabilities follow premium", func(t *testing.T) {
		for _, c := range Capabilities {
			if c == CapabilityBasicView {
				continue
			}
			if CanAccess(c, false) {
				t.Errorf("Expected %s to be denied for free tier", c)
			}
			if !CanAccess(c, true) {
				t.Errorf("Expected %s to be granted for premium", c)
			}
		}
	})

	t.Run("unknown capability is denied", func(t *testing.T) {
		if CanAccess("export", true) {
			t.Error("Expected unknown capability to be denied")
		}
	})
}

func TestCapabilityMap(t *testing.T) {
	m := CapabilityMap(false)
	if len(m) != len(Capabilities) {
		t.Fatalf("Expected %d capabilities, got %d", len(Capabilities), len(m))
	}
	if !m[CapabilityBasicView] || m[CapabilitySearch] {
		t.Errorf("Unexpected free-tier map: %v", m)
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortByScore, false},
		{"score", SortByScore, false},
		{"yield", SortByYield, false},
		{"performance", SortByPerformance, false},
		{"name", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSortKey(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNewETFDetail(t *testing.T) {
	perf := 1.5
	e := ETF{Ticker: "DIV", LastDividend: 0.2, MonthPerformance: &perf, Score: 42}

	locked := NewETFDetail(e, 10, false)
	if locked.Metrics != nil || !locked.MetricsLocked {
		t.Errorf("Expected locked metrics, got %+v", locked)
	}
	if locked.DividendPayment != e.DividendPayment(10) {
		t.Errorf("Expected payment %v, got %v", e.DividendPayment(10), locked.DividendPayment)
	}

	open := NewETFDetail(e, 10, true)
	if open.Metrics == nil || open.MetricsLocked {
		t.Fatalf("Expected metrics, got %+v", open)
	}
	if open.Metrics.Score != 42 || open.Metrics.Performance != PerformancePositive {
		t.Errorf("Unexpected metrics: %+v", open.Metrics)
	}
}
