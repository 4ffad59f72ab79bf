package request

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// ParseViewParams extracts the list view parameters from query values.
//
// Rules:
//   - sort: score (default), yield or performance
//   - search: trimmed free text, may be empty
//   - shares: missing or non-numeric input falls back to model.DefaultShares;
//     a negative number is rejected
func ParseViewParams(sortParam, searchParam, sharesParam string) (model.ViewParams, error) {
	sortKey, err := model.ParseSortKey(strings.TrimSpace(strings.ToLower(sortParam)))
	if err != nil {
		return model.ViewParams{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidSortKey, sortParam)
	}

	shares, err := ParseShares(sharesParam)
	if err != nil {
		return model.ViewParams{}, err
	}

	return model.ViewParams{
		Sort:   sortKey,
		Search: strings.TrimSpace(searchParam),
		Shares: shares,
	}, nil
}

// ParseShares coerces the shares input. Unparseable input becomes
// model.DefaultShares; negative counts return ErrNegativeShares.
func ParseShares(s string) (int64, error) {
	shares, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return model.DefaultShares, nil
	}
	if shares < 0 {
		return 0, apperrors.ErrNegativeShares
	}
	return shares, nil
}
