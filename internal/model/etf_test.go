package model

import (
	"math"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestETF_DividendPayment(t *testing.T) {
	e := ETF{Ticker: "DIV", LastDividend: 0.1}

	tests := []struct {
		shares int64
		want   float64
	}{
		{0, 0},
		{1, 0.1},
		{100, 10},
		{100000, 10000},
	}

	for _, tt := range tests {
		got := e.DividendPayment(tt.shares)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DividendPayment(%d) = %v, want %v", tt.shares, got, tt.want)
		}
	}

	t.Run("uses the exact product", func(t *testing.T) {
		e := ETF{LastDividend: 0.2234}
		if got := e.DividendPayment(250); got != 0.2234*250 {
			t.Errorf("Expected %v, got %v", 0.2234*250, got)
		}
	})
}

func TestETF_PerformanceCategory(t *testing.T) {
	tests := []struct {
		name string
		perf *float64
		want PerformanceCategory
	}{
		{"positive", ptr(1.25), PerformancePositive},
		{"negative", ptr(-0.55), PerformanceNegative},
		{"zero", ptr(0.0), PerformanceNeutral},
		{"absent", nil, PerformanceNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ETF{MonthPerformance: tt.perf}
			if got := e.PerformanceCategory(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestETF_Displays(t *testing.T) {
	t.Run("yield is stored scaled by 100", func(t *testing.T) {
		e := ETF{DividendYield: 379.0}
		if got := e.YieldDisplay(); got != "3.79%" {
			t.Errorf("Expected 3.79%%, got %s", got)
		}
	})

	t.Run("performance carries an explicit sign", func(t *testing.T) {
		cases := map[string]*float64{
			"+1.25%": ptr(1.25),
			"-2.00%": ptr(-2.0),
			"+0.00%": ptr(0.0),
			"N/A":    nil,
		}
		for want, perf := range cases {
			if got := (ETF{MonthPerformance: perf}).PerformanceDisplay(); got != want {
				t.Errorf("Expected %s, got %s", want, got)
			}
		}
	})

	t.Run("missing performance sorts as sentinel", func(t *testing.T) {
		if got := (ETF{}).PerformanceOrMissing(); got != MissingPerformance {
			t.Errorf("Expected %v, got %v", MissingPerformance, got)
		}
	})

	t.Run("ex-date display and badge", func(t *testing.T) {
		e := ETF{LastExDate: ptr("2025-09-24")}
		if got := e.ExDateDisplay(); got != "Sep 24, 2025" {
			t.Errorf("Expected 'Sep 24, 2025', got %s", got)
		}
		month, day := e.ExDateBadge()
		if month != "Sep" || day != "24" {
			t.Errorf("Expected Sep 24, got %s %s", month, day)
		}
	})

	t.Run("malformed ex-date is shown verbatim", func(t *testing.T) {
		e := ETF{LastExDate: ptr("soon")}
		if got := e.ExDateDisplay(); got != "soon" {
			t.Errorf("Expected 'soon', got %s", got)
		}
		if month, day := e.ExDateBadge(); month != "" || day != "" {
			t.Errorf("Expected empty badge, got %q %q", month, day)
		}
	})

	t.Run("absent ex-date", func(t *testing.T) {
		if got := (ETF{}).ExDateDisplay(); got != "N/A" {
			t.Errorf("Expected N/A, got %s", got)
		}
	})
}

func TestSnapshot_Find(t *testing.T) {
	s := &Snapshot{ETFs: []ETF{{Ticker: "DIV"}, {Ticker: "SCHD"}}}

	if e, ok := s.Find("SCHD"); !ok || e.Ticker != "SCHD" {
		t.Errorf("Expected SCHD, got %v %v", e, ok)
	}
	if _, ok := s.Find("NOPE"); ok {
		t.Error("Expected NOPE not to be found")
	}

	var empty *Snapshot
	if empty.Len() != 0 {
		t.Errorf("Expected nil snapshot length 0, got %d", empty.Len())
	}
	if _, ok := empty.Find("DIV"); ok {
		t.Error("Expected nil snapshot to find nothing")
	}
}
