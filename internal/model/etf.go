package model

import (
	"fmt"
	"time"
)

// ETF is a snapshot of one dividend-paying fund at analysis time.
// The ticker is the record's identity within an Analysis.
type ETF struct {
	Ticker           string   `json:"ticker"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	DividendYield    float64  `json:"dividend_yield"` // stored x100, see YieldPercent
	AnnualDividend   float64  `json:"annual_dividend"`
	LastDividend     float64  `json:"last_dividend"`
	LastExDate       *string  `json:"last_ex_date"`
	PaymentFrequency string   `json:"payment_frequency"`
	OfficialSource   string   `json:"official_source"`
	MonthPerformance *float64 `json:"month_performance"`
	ExpenseRatio     float64  `json:"expense_ratio"`
	Volume           int64    `json:"volume"`
	Score            float64  `json:"score"`
}

// Analysis is the bundled document: the analysis timestamp plus the
// recommended funds in source order.
type Analysis struct {
	Date            string `json:"date"`
	Recommendations []ETF  `json:"recommendations"`
}

// PerformanceCategory classifies a fund by the sign of its one-month performance.
type PerformanceCategory string

const (
	PerformancePositive PerformanceCategory = "positive"
	PerformanceNegative PerformanceCategory = "negative"
	PerformanceNeutral  PerformanceCategory = "neutral"
)

// MissingPerformance is the value a fund without one-month performance sorts as.
const MissingPerformance = -999.0

// exDateLayout is the wire format of LastExDate.
const exDateLayout = "2006-01-02"

// DividendPayment returns the payout of the most recent dividend for the given
// number of shares. Shares are not validated here.
func (e ETF) DividendPayment(shares int64) float64 {
	return e.LastDividend * float64(shares)
}

// PerformanceCategory returns positive, negative or neutral from the sign of
// MonthPerformance. An absent value is neutral.
func (e ETF) PerformanceCategory() PerformanceCategory {
	if e.MonthPerformance == nil {
		return PerformanceNeutral
	}
	switch p := *e.MonthPerformance; {
	case p > 0:
		return PerformancePositive
	case p < 0:
		return PerformanceNegative
	default:
		return PerformanceNeutral
	}
}

// PerformanceOrMissing returns MonthPerformance, or MissingPerformance when absent.
func (e ETF) PerformanceOrMissing() float64 {
	if e.MonthPerformance == nil {
		return MissingPerformance
	}
	return *e.MonthPerformance
}

// YieldPercent converts the stored yield into the displayed percentage.
// The bundled data stores yield scaled by 100 (379.0 is shown as 3.79%).
func (e ETF) YieldPercent() float64 {
	return e.DividendYield / 100
}

// YieldDisplay formats the yield the way the list rows show it, e.g. "3.79%".
func (e ETF) YieldDisplay() string {
	return fmt.Sprintf("%.2f%%", e.YieldPercent())
}

// PerformanceDisplay formats the one-month performance with an explicit sign,
// e.g. "+1.25%" or "-0.55%". Returns "N/A" when absent.
func (e ETF) PerformanceDisplay() string {
	if e.MonthPerformance == nil {
		return "N/A"
	}
	p := *e.MonthPerformance
	sign := ""
	if p >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, p)
}

// ExDate parses LastExDate. ok is false when the date is absent or malformed.
func (e ETF) ExDate() (t time.Time, ok bool) {
	if e.LastExDate == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(exDateLayout, *e.LastExDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ExDateDisplay returns the ex-date in medium style ("Sep 24, 2025").
// A malformed date is returned verbatim and an absent one as "N/A".
func (e ETF) ExDateDisplay() string {
	if e.LastExDate == nil {
		return "N/A"
	}
	t, ok := e.ExDate()
	if !ok {
		return *e.LastExDate
	}
	return t.Format(MediumDateLayout)
}

// ExDateBadge returns the month and day of the ex-date for the calendar badge,
// e.g. ("Sep", "24"). Both are empty when the date is absent or malformed.
func (e ETF) ExDateBadge() (month, day string) {
	t, ok := e.ExDate()
	if !ok {
		return "", ""
	}
	return t.Format("Jan"), t.Format("2")
}

// MediumDateLayout is the medium human-readable date style used for display.
const MediumDateLayout = "Jan 2, 2006"
