package domain

import "errors"

// ErrorKind classifies a validation failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindMissingField
	KindFormat
	KindRange
	KindIndexBounds
)

// String returns the kind name used in logs and metrics.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingField:
		return "missing_field"
	case KindFormat:
		return "format"
	case KindRange:
		return "range"
	case KindIndexBounds:
		return "index_bounds"
	default:
		return "unknown"
	}
}

// ValidationError is a user-facing failure with a fixed message.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *ValidationError {
	return &ValidationError{Kind: kind, Message: message}
}

// Field errors
var (
	ErrMissingFields = newError(KindMissingField, "Missing fields detected")
	ErrMissingDate   = newError(KindMissingField, "Missing Date")
	ErrIndexNotFound = newError(KindMissingField, "Index field not found")
	ErrInvalidDate   = newError(KindFormat, `Date must be valid and have format: "DD-MM-YYYY"`)
	ErrInvalidIndex  = newError(KindFormat, "Index must contain a valid integer only")
	ErrFutureDate    = newError(KindRange, "Date cannot be in the future")
)

// Income value errors
var (
	ErrInvalidIncomeValue  = newError(KindFormat, "Income value must be a valid float that is 2 d.p. or less")
	ErrIncomeValueTooLarge = newError(KindRange, "Income value can at most be 1000000")
	ErrIncomeValueTooSmall = newError(KindRange, "Income value must be greater than 0")
)

// Expense value errors
var (
	ErrInvalidExpenseValue  = newError(KindFormat, "Expense value must be a valid float that is 2 d.p. or less")
	ErrExpenseValueTooLarge = newError(KindRange, "Expense value must be less than 1000000")
	ErrExpenseValueTooSmall = newError(KindRange, "Expense value must be greater than 0")
)

// List errors
var (
	ErrIndexOutOfRange = newError(KindIndexBounds, "Index out of range")
)

// KindOf returns the kind of the first ValidationError in err's chain.
func KindOf(err error) ErrorKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return KindUnknown
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	return KindOf(err) != KindUnknown
}
