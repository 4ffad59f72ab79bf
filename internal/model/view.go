package model

import "fmt"

// SortKey selects the descending order of the derived view.
type SortKey string

const (
	SortByScore       SortKey = "score"
	SortByYield       SortKey = "yield"
	SortByPerformance SortKey = "performance"
)

// ValidSortKeys lists accepted sort keys.
var ValidSortKeys = map[SortKey]bool{
	SortByScore: true, SortByYield: true, SortByPerformance: true,
}

// ParseSortKey maps a query value to a SortKey. Empty means score.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByScore, nil
	}
	k := SortKey(s)
	if !ValidSortKeys[k] {
		return "", fmt.Errorf("invalid sort key: %s", s)
	}
	return k, nil
}

// DefaultShares is used when the shares input is missing or not a number.
const DefaultShares = 100

// ViewParams are the ephemeral inputs of one derived view computation.
type ViewParams struct {
	Sort   SortKey
	Search string
	Shares int64
}

// ETFRow is one rendered list entry: the record plus its derived values.
type ETFRow struct {
	ETF
	YieldPercentDisplay string              `json:"yieldDisplay"`
	PerformanceDisplay  string              `json:"performanceDisplay"`
	Performance         PerformanceCategory `json:"performanceCategory"`
	DividendPayment     float64             `json:"dividendPayment"`
	Shares              int64               `json:"shares"`
}

// NewETFRow derives the display values of e for the given share count.
func NewETFRow(e ETF, shares int64) ETFRow {
	return ETFRow{
		ETF:                 e,
		YieldPercentDisplay: e.YieldDisplay(),
		PerformanceDisplay:  e.PerformanceDisplay(),
		Performance:         e.PerformanceCategory(),
		DividendPayment:     e.DividendPayment(shares),
		Shares:              shares,
	}
}

// ETFListResponse is the payload of the main list.
type ETFListResponse struct {
	AnalysisDate string   `json:"analysisDate"`
	Sort         SortKey  `json:"sort"`
	Search       string   `json:"search,omitempty"`
	SearchActive bool     `json:"searchActive"`
	IsPremium    bool     `json:"isPremium"`
	Total        int      `json:"total"`
	Count        int      `json:"count"`
	ETFs         []ETFRow `json:"etfs"`
}

// CalendarEntry is one row of the ex-dividend calendar.
type CalendarEntry struct {
	Ticker           string  `json:"ticker"`
	Name             string  `json:"name"`
	ExDate           string  `json:"exDate"`
	ExDateDisplay    string  `json:"exDateDisplay"`
	Month            string  `json:"month"`
	Day              string  `json:"day"`
	YieldDisplay     string  `json:"yieldDisplay"`
	LastDividend     float64 `json:"lastDividend"`
	PaymentFrequency string  `json:"paymentFrequency"`
}

// NewCalendarEntry builds the calendar row for e. e must have a LastExDate.
func NewCalendarEntry(e ETF) CalendarEntry {
	month, day := e.ExDateBadge()
	entry := CalendarEntry{
		Ticker:           e.Ticker,
		Name:             e.Name,
		ExDateDisplay:    e.ExDateDisplay(),
		Month:            month,
		Day:              day,
		YieldDisplay:     e.YieldDisplay(),
		LastDividend:     e.LastDividend,
		PaymentFrequency: e.PaymentFrequency,
	}
	if e.LastExDate != nil {
		entry.ExDate = *e.LastExDate
	}
	return entry
}

// ETFDetail is the detail screen payload. Metrics are only filled in when
// the caller has the detailedMetrics capability.
type ETFDetail struct {
	Ticker           string      `json:"ticker"`
	Name             string      `json:"name"`
	Price            float64     `json:"price"`
	YieldDisplay     string      `json:"yieldDisplay"`
	AnnualDividend   float64     `json:"annualDividend"`
	LastDividend     float64     `json:"lastDividend"`
	LastExDate       *string     `json:"lastExDate"`
	ExDateDisplay    string      `json:"exDateDisplay"`
	PaymentFrequency string      `json:"paymentFrequency"`
	OfficialSource   string      `json:"officialSource"`
	Shares           int64       `json:"shares"`
	DividendPayment  float64     `json:"dividendPayment"`
	Metrics          *ETFMetrics `json:"metrics,omitempty"`
	MetricsLocked    bool        `json:"metricsLocked"`
}

// ETFMetrics are the detailed performance metrics of a fund.
type ETFMetrics struct {
	MonthPerformance   *float64            `json:"monthPerformance"`
	PerformanceDisplay string              `json:"performanceDisplay"`
	Performance        PerformanceCategory `json:"performanceCategory"`
	ExpenseRatio       float64             `json:"expenseRatio"`
	Volume             int64               `json:"volume"`
	Score              float64             `json:"score"`
}

// NewETFDetail builds the detail payload of e. Metrics are attached only
// when withMetrics is set.
func NewETFDetail(e ETF, shares int64, withMetrics bool) ETFDetail {
	d := ETFDetail{
		Ticker:           e.Ticker,
		Name:             e.Name,
		Price:            e.Price,
		YieldDisplay:     e.YieldDisplay(),
		AnnualDividend:   e.AnnualDividend,
		LastDividend:     e.LastDividend,
		LastExDate:       e.LastExDate,
		ExDateDisplay:    e.ExDateDisplay(),
		PaymentFrequency: e.PaymentFrequency,
		OfficialSource:   e.OfficialSource,
		Shares:           shares,
		DividendPayment:  e.DividendPayment(shares),
		MetricsLocked:    !withMetrics,
	}
	if withMetrics {
		d.Metrics = &ETFMetrics{
			MonthPerformance:   e.MonthPerformance,
			PerformanceDisplay: e.PerformanceDisplay(),
			Performance:        e.PerformanceCategory(),
			ExpenseRatio:       e.ExpenseRatio,
			Volume:             e.Volume,
			Score:              e.Score,
		}
	}
	return d
}
