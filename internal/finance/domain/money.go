package domain

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	financeErrors "github.com/fintrackio/fintrack/internal/finance/errors"
)

// Money is a fixed-point monetary amount in cents. Totals are plain int64
// additions, so repeated aggregation never drifts the way float64 would.
type Money struct {
	Cents int64
}

func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// MarshalJSON renders the amount as a plain decimal number, e.g. 12.34.
func (m Money) MarshalJSON() ([]byte, error) {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return []byte(fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	cents, err := ParseDecimalToCents(s)
	if err != nil {
		return err
	}
	m.Cents = cents
	return nil
}

// ParseDecimalToCents converts a decimal string to cents, rounding the third
// decimal digit half-up. Negative amounts are allowed; records carry no sign
// constraint.
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, financeErrors.NewValidationError("amount", "Amount is invalid")
	}
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, financeErrors.NewValidationError("amount", "Amount is invalid")
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, financeErrors.NewValidationError("amount", "Amount is invalid")
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, financeErrors.NewValidationError("amount", "Amount is invalid")
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, financeErrors.NewValidationError("amount", "Amount is invalid")
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}
