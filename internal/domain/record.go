package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind distinguishes income from expense records.
type RecordKind string

const (
	KindIncome  RecordKind = "income"
	KindExpense RecordKind = "expense"
)

// Field keys of a Fields map.
const (
	FieldCategory    = "c"
	FieldDescription = "de"
	FieldDate        = "da"
	FieldValue       = "v"
	FieldIndex       = "in"
)

// DateLayout is the user-facing date format, DD-MM-YYYY.
const DateLayout = "02-01-2006"

// MaxValue is the ceiling for a single record value.
var MaxValue = decimal.NewFromInt(1_000_000)

// Fields maps a field key to its raw text value.
type Fields map[string]string

// Income represents money received.
type Income struct {
	Description string
	Date        time.Time
	Value       decimal.Decimal
}

// NewIncome creates an Income without validating it.
func NewIncome(description string, date time.Time, value decimal.Decimal) Income {
	return Income{
		Description: description,
		Date:        civilDate(date),
		Value:       value,
	}
}

// Expense represents money spent.
type Expense struct {
	Category    string
	Description string
	Date        time.Time
	Value       decimal.Decimal
}

// NewExpense creates an Expense without validating it.
func NewExpense(category, description string, date time.Time, value decimal.Decimal) Expense {
	return Expense{
		Category:    category,
		Description: description,
		Date:        civilDate(date),
		Value:       value,
	}
}

// Equal reports whether both incomes hold the same values.
func (i Income) Equal(o Income) bool {
	return i.Description == o.Description && i.Date.Equal(o.Date) && i.Value.Equal(o.Value)
}

// Equal reports whether both expenses hold the same values.
func (e Expense) Equal(o Expense) bool {
	return e.Category == o.Category &&
		e.Description == o.Description &&
		e.Date.Equal(o.Date) &&
		e.Value.Equal(o.Value)
}

// civilDate drops the time of day, keeping the calendar date as midnight UTC.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
