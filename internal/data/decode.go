package data

import (
	"encoding/json"
	"fmt"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// wireAnalysis and wireETF mirror the document with pointers so that missing
// required fields can be told apart from zero values.
type wireAnalysis struct {
	Date            *string    `json:"date"`
	Recommendations *[]wireETF `json:"recommendations"`
}

type wireETF struct {
	Ticker           *string  `json:"ticker"`
	Name             *string  `json:"name"`
	Price            *float64 `json:"price"`
	DividendYield    *float64 `json:"dividend_yield"`
	AnnualDividend   *float64 `json:"annual_dividend"`
	LastDividend     *float64 `json:"last_dividend"`
	LastExDate       *string  `json:"last_ex_date"`
	PaymentFrequency *string  `json:"payment_frequency"`
	OfficialSource   *string  `json:"official_source"`
	MonthPerformance *float64 `json:"month_performance"`
	ExpenseRatio     *float64 `json:"expense_ratio"`
	Volume           *int64   `json:"volume"`
	Score            *float64 `json:"score"`
}

// Decode parses an analysis document. Any failure, including a missing
// required field or a duplicate ticker, is returned as *apperrors.DecodeError.
func Decode(b []byte) (model.Analysis, error) {
	var w wireAnalysis
	if err := json.Unmarshal(b, &w); err != nil {
		return model.Analysis{}, &apperrors.DecodeError{Err: err}
	}
	if w.Date == nil {
		return model.Analysis{}, missing("date")
	}
	if w.Recommendations == nil {
		return model.Analysis{}, missing("recommendations")
	}

	etfs := make([]model.ETF, 0, len(*w.Recommendations))
	seen := make(map[string]int, len(*w.Recommendations))
	for i, r := range *w.Recommendations {
		e, err := r.toModel(i)
		if err != nil {
			return model.Analysis{}, err
		}
		if first, ok := seen[e.Ticker]; ok {
			return model.Analysis{}, &apperrors.DecodeError{
				Err: fmt.Errorf("%w: %q at recommendations[%d] and recommendations[%d]",
					apperrors.ErrDuplicateTicker, e.Ticker, first, i),
			}
		}
		seen[e.Ticker] = i
		etfs = append(etfs, e)
	}

	return model.Analysis{Date: *w.Date, Recommendations: etfs}, nil
}

func (r wireETF) toModel(i int) (model.ETF, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"ticker", r.Ticker != nil},
		{"name", r.Name != nil},
		{"price", r.Price != nil},
		{"dividend_yield", r.DividendYield != nil},
		{"annual_dividend", r.AnnualDividend != nil},
		{"last_dividend", r.LastDividend != nil},
		{"payment_frequency", r.PaymentFrequency != nil},
		{"official_source", r.OfficialSource != nil},
		{"expense_ratio", r.ExpenseRatio != nil},
		{"volume", r.Volume != nil},
		{"score", r.Score != nil},
	}
	for _, f := range required {
		if !f.present {
			return model.ETF{}, missing(fmt.Sprintf("recommendations[%d].%s", i, f.name))
		}
	}

	return model.ETF{
		Ticker:           *r.Ticker,
		Name:             *r.Name,
		Price:            *r.Price,
		DividendYield:    *r.DividendYield,
		AnnualDividend:   *r.AnnualDividend,
		LastDividend:     *r.LastDividend,
		LastExDate:       r.LastExDate,
		PaymentFrequency: *r.PaymentFrequency,
		OfficialSource:   *r.OfficialSource,
		MonthPerformance: r.MonthPerformance,
		ExpenseRatio:     *r.ExpenseRatio,
		Volume:           *r.Volume,
		Score:            *r.Score,
	}, nil
}

func missing(field string) error {
	return &apperrors.DecodeError{Err: fmt.Errorf("%w: %s", apperrors.ErrMissingRequiredField, field)}
}
