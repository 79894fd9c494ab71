// Package money normalizes locale-ambiguous amount strings and date
// tokens into decimal amounts and calendar dates.
package money

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxozen/fluxozen/internal/model"
)

// CurrencyMarker is the prefix stripped from amount strings before
// parsing.
const CurrencyMarker = "R$"

var (
	slashDateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	isoDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ParseAmount parses an amount string that may carry a currency marker
// and either `.` or `,` as grouping/decimal separators.
//
// When both separators are present, `.` groups thousands and `,` is
// the decimal point (1.234,56 -> 1234.56). When only `,` is present it
// is the decimal point. Otherwise the string parses as a plain
// decimal, which means a lone `.` with three fractional digits
// ("1.234") reads as one-point-two-three-four, not one thousand. That
// matches how statements with a decimal component behave and is kept
// as-is; see the package tests.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, CurrencyMarker))
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("parsing amount: empty input")
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")
	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return d, nil
}

// IsAmount reports whether raw parses under the ParseAmount rules.
func IsAmount(raw string) bool {
	_, err := ParseAmount(raw)
	return err == nil
}

// ParseDateToken parses a token shaped DD/MM/YYYY or YYYY-MM-DD into a
// calendar date. No other formats are recognized.
func ParseDateToken(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	switch {
	case slashDateRe.MatchString(s):
		t, err := time.ParseInLocation("02/01/2006", s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", raw, err)
		}
		return t, nil
	case isoDateRe.MatchString(s):
		t, err := time.ParseInLocation(model.DateFormat, s, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", raw, err)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parsing date %q: unrecognized format", raw)
}

// LooksLikeDate reports whether s matches DD/MM/YYYY or YYYY-MM-DD
// exactly.
func LooksLikeDate(s string) bool {
	s = strings.TrimSpace(s)
	return slashDateRe.MatchString(s) || isoDateRe.MatchString(s)
}
