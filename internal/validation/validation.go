package validation

import (
	"fmt"
	"regexp"
)

// Common validation errors
var (
	ErrInvalidTicker = fmt.Errorf("invalid ticker format")
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9.\-]{0,9}$`)

// ValidateTicker checks that a ticker is 1-10 upper-case letters, digits,
// dots or dashes, starting with a letter or digit.
func ValidateTicker(ticker string) error {
	if !tickerPattern.MatchString(ticker) {
		return fmt.Errorf("%w: %s", ErrInvalidTicker, ticker)
	}
	return nil
}
