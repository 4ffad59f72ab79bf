package testutil

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// ETFBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	etf := testutil.NewETF("SCHD").Build()
//
//	// Customized fund
//	etf := testutil.NewETF("DIV").
//	    WithScore(33520).
//	    WithPerformance(-2.0).
//	    WithExDate("2025-10-03").
//	    Build()
type ETFBuilder struct {
	etf model.ETF
}

// NewETF creates an ETFBuilder with sensible defaults for the given ticker.
func NewETF(ticker string) *ETFBuilder {
	return &ETFBuilder{etf: model.ETF{
		Ticker:           ticker,
		Name:             fmt.Sprintf("%s Dividend ETF", ticker),
		Price:            25.00,
		DividendYield:    350.0,
		AnnualDividend:   0.88,
		LastDividend:     0.22,
		PaymentFrequency: "Quarterly",
		OfficialSource:   fmt.Sprintf("https://example.com/funds/%s", ticker),
		ExpenseRatio:     0.06,
		Volume:           100000,
		Score:            10000,
	}}
}

// WithName sets a custom name.
func (b *ETFBuilder) WithName(name string) *ETFBuilder {
	b.etf.Name = name
	return b
}

// WithScore sets the composite score.
func (b *ETFBuilder) WithScore(score float64) *ETFBuilder {
	b.etf.Score = score
	return b
}

// WithYield sets the stored dividend yield (scaled x100).
func (b *ETFBuilder) WithYield(yield float64) *ETFBuilder {
	b.etf.DividendYield = yield
	return b
}

// WithPerformance sets the one-month performance.
func (b *ETFBuilder) WithPerformance(p float64) *ETFBuilder {
	b.etf.MonthPerformance = &p
	return b
}

// WithLastDividend sets the most recent per-share dividend.
func (b *ETFBuilder) WithLastDividend(d float64) *ETFBuilder {
	b.etf.LastDividend = d
	return b
}

// WithExDate sets the most recent ex-dividend date (YYYY-MM-DD).
func (b *ETFBuilder) WithExDate(date string) *ETFBuilder {
	b.etf.LastExDate = &date
	return b
}

// Build returns the fund.
func (b *ETFBuilder) Build() model.ETF {
	return b.etf
}

// Tickers returns the tickers of etfs in order.
func Tickers(etfs []model.ETF) []string {
	out := make([]string, len(etfs))
	for i, e := range etfs {
		out[i] = e.Ticker
	}
	return out
}

// AnalysisJSON encodes an analysis document with the given date and funds.
func AnalysisJSON(t *testing.T, date string, etfs ...model.ETF) []byte {
	t.Helper()

	if etfs == nil {
		etfs = []model.ETF{}
	}
	b, err := json.Marshal(model.Analysis{Date: date, Recommendations: etfs})
	if err != nil {
		t.Fatalf("Failed to encode analysis: %v", err)
	}
	return b
}

// MemorySource is an in-memory data.Source whose content can be replaced
// between loads. A nil content behaves like a missing resource.
type MemorySource struct {
	mu      sync.Mutex
	content []byte
	reads   int
}

// NewMemorySource creates a source serving content.
func NewMemorySource(content []byte) *MemorySource {
	return &MemorySource{content: content}
}

// Set replaces the served content.
func (s *MemorySource) Set(content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = content
}

// Reads returns how many times Read was called.
func (s *MemorySource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *MemorySource) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if s.content == nil {
		return nil, fmt.Errorf("%w: memory", apperrors.ErrResourceNotFound)
	}
	return s.content, nil
}

func (s *MemorySource) Name() string {
	return "memory"
}
