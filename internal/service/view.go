package service

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// BuildView computes the ordered list of funds to render.
//
// The steps run in a fixed order, and changing it changes the output:
//  1. stable sort, descending, by the chosen key
//  2. search filter on ticker or name, applied only when search is non-empty
//     and the tier may search; otherwise the text is ignored
//  3. tier limit: non-premium callers get at most freeLimit records
//
// etfs is never modified. The result shares no backing array with etfs.
func BuildView(etfs []model.ETF, sortKey model.SortKey, search string, isPremium bool, freeLimit int) []model.ETF {
	out := SortETFs(etfs, sortKey)

	if search != "" && model.CanAccess(model.CapabilitySearch, isPremium) {
		out = FilterETFs(out, search)
	}

	if !isPremium {
		out = out[:min(len(out), max(freeLimit, 0))]
	}

	return out
}

// SortETFs returns a stably sorted copy of etfs, descending by key.
// Funds without one-month performance sort as model.MissingPerformance.
// Unknown keys fall back to score.
func SortETFs(etfs []model.ETF, key model.SortKey) []model.ETF {
	out := slices.Clone(etfs)
	if out == nil {
		out = []model.ETF{}
	}

	var value func(model.ETF) float64
	switch key {
	case model.SortByYield:
		value = func(e model.ETF) float64 { return e.DividendYield }
	case model.SortByPerformance:
		value = model.ETF.PerformanceOrMissing
	default:
		value = func(e model.ETF) float64 { return e.Score }
	}

	slices.SortStableFunc(out, func(a, b model.ETF) int {
		return cmp.Compare(value(b), value(a))
	})
	return out
}

// FilterETFs keeps funds whose ticker or name contains search, ignoring case.
func FilterETFs(etfs []model.ETF, search string) []model.ETF {
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]model.ETF, 0, len(etfs))
	for _, e := range etfs {
		if strings.Contains(fold.String(e.Ticker), needle) || strings.Contains(fold.String(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// CalendarView returns the funds that have an ex-dividend date, most recent
// first. Funds without an ex-date are left out; ties keep source order.
func CalendarView(etfs []model.ETF) []model.ETF {
	out := make([]model.ETF, 0, len(etfs))
	for _, e := range etfs {
		if e.LastExDate != nil {
			out = append(out, e)
		}
	}

	// ISO dates order correctly as strings.
	slices.SortStableFunc(out, func(a, b model.ETF) int {
		return strings.Compare(*b.LastExDate, *a.LastExDate)
	})
	return out
}
