package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// now is the clock used for the future-date rule.
var now = time.Now

// ParseDate parses a DD-MM-YYYY date. Invalid calendar dates are rejected,
// as are dates after today.
func ParseDate(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, ErrMissingDate
	}

	date, err := time.Parse(DateLayout, text)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	if date.After(civilDate(now())) {
		return time.Time{}, ErrFutureDate
	}

	return date, nil
}

// amountMagnitude bounds the decimal magnitude of a parsed amount. Beyond it
// values overflow to ±10^amountMagnitude or underflow to zero, so the bound
// checks never rescale by an attacker-chosen exponent.
const amountMagnitude = 64

// ParseAmount parses a decimal amount for the given record kind.
// Bounds are checked by the record parsers.
func ParseAmount(text string, kind RecordKind) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		if kind == KindExpense {
			return decimal.Zero, ErrInvalidExpenseValue
		}
		return decimal.Zero, ErrInvalidIncomeValue
	}

	return saturate(value), nil
}

// saturate replaces amounts outside ±10^amountMagnitude with cheap stand-ins.
// It only inspects the coefficient digits and the exponent.
func saturate(value decimal.Decimal) decimal.Decimal {
	if value.IsZero() {
		return decimal.Zero
	}

	magnitude := len(value.Abs().Coefficient().String()) + int(value.Exponent())
	switch {
	case magnitude > amountMagnitude:
		return decimal.New(int64(value.Sign()), amountMagnitude)
	case magnitude < -amountMagnitude:
		return decimal.Zero
	}

	return value
}

// ParseIndex parses a signed integer index.
func ParseIndex(text string) (int, error) {
	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrIndexNotFound
	}

	return index, nil
}
