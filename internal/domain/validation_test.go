package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// fixClock pins "today" to 15-06-2024 at mid afternoon.
func fixClock(t *testing.T) {
	t.Helper()

	orig := now
	now = func() time.Time {
		return time.Date(2024, time.June, 15, 15, 30, 0, 0, time.Local)
	}
	t.Cleanup(func() { now = orig })
}

func TestParseDate(t *testing.T) {
	fixClock(t)

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr error
	}{
		{"normal date", "02-04-2023", time.Date(2023, time.April, 2, 0, 0, 0, 0, time.UTC), nil},
		{"today is allowed", "15-06-2024", time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC), nil},
		{"leap day", "29-02-2024", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), nil},
		{"no february rollover", "30-02-2023", time.Time{}, ErrInvalidDate},
		{"non leap february 29", "29-02-2023", time.Time{}, ErrInvalidDate},
		{"iso layout", "2023-02-30", time.Time{}, ErrInvalidDate},
		{"single digit day", "2-04-2023", time.Time{}, ErrInvalidDate},
		{"two digit year", "02-04-23", time.Time{}, ErrInvalidDate},
		{"trailing text", "02-04-2023x", time.Time{}, ErrInvalidDate},
		{"month thirteen", "02-13-2023", time.Time{}, ErrInvalidDate},
		{"tomorrow", "16-06-2024", time.Time{}, ErrFutureDate},
		{"far future", "02-04-2030", time.Time{}, ErrFutureDate},
		{"missing", "", time.Time{}, ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDateMessages(t *testing.T) {
	fixClock(t)

	if _, err := ParseDate("30-02-2023"); err == nil || err.Error() != `Date must be valid and have format: "DD-MM-YYYY"` {
		t.Fatalf("unexpected format message: %v", err)
	}

	if _, err := ParseDate("02-04-2030"); err == nil || err.Error() != "Date cannot be in the future" {
		t.Fatalf("unexpected future message: %v", err)
	}

	if _, err := ParseDate(""); err == nil || err.Error() != "Missing Date" {
		t.Fatalf("unexpected missing message: %v", err)
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	value, err := ParseAmount("3.50", KindExpense)
	if err != nil {
		t.Fatalf("expected valid amount, got %v", err)
	}
	if !value.Equal(decimal.RequireFromString("3.5")) {
		t.Fatalf("expected 3.5, got %s", value)
	}

	value, err = ParseAmount(" 1e3 ", KindIncome)
	if err != nil {
		t.Fatalf("expected exponent form to parse, got %v", err)
	}
	if !value.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected 1000, got %s", value)
	}

	if _, err := ParseAmount("abc", KindIncome); !errors.Is(err, ErrInvalidIncomeValue) {
		t.Fatalf("expected ErrInvalidIncomeValue, got %v", err)
	}

	if _, err := ParseAmount("3,50", KindExpense); !errors.Is(err, ErrInvalidExpenseValue) {
		t.Fatalf("expected ErrInvalidExpenseValue, got %v", err)
	}
}

func TestParseAmountExtremeExponents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want decimal.Decimal
	}{
		{"1e100000000", decimal.New(1, amountMagnitude)},
		{"-1e100000000", decimal.New(-1, amountMagnitude)},
		{"1e-100000000", decimal.Zero},
		{"0e2000000000", decimal.Zero},
		{"1e64", decimal.New(1, 64)},
		{"1e-30", decimal.New(1, -30)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			start := time.Now()
			value, err := ParseAmount(tt.text, KindIncome)
			if err != nil {
				t.Fatalf("expected %q to parse, got %v", tt.text, err)
			}
			if !value.Equal(tt.want) {
				t.Fatalf("expected %s, got %s", tt.want, value)
			}
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Fatalf("parsing %q took %s", tt.text, elapsed)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"1", 1, false},
		{"-3", -3, false},
		{"0", 0, false},
		{"2 a", 0, true},
		{"abc", 0, true},
		{" 1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseIndex(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrIndexNotFound) {
				t.Fatalf("ParseIndex(%q) error = %v, want ErrIndexNotFound", tt.input, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseIndex(%q) = %d, %v; want %d", tt.input, got, err, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if KindOf(ErrMissingFields) != KindMissingField {
		t.Fatalf("expected missing field kind")
	}
	if KindOf(ErrFutureDate) != KindRange {
		t.Fatalf("expected range kind")
	}
	if KindOf(errors.New("boom")) != KindUnknown {
		t.Fatalf("expected unknown kind for plain error")
	}
	if IsValidation(nil) {
		t.Fatalf("nil is not a validation error")
	}
}
