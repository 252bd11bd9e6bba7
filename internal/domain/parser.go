package domain

import "strconv"

// ParseIncome builds an Income from a field map.
func ParseIncome(fields Fields) (Income, error) {
	if !fields.has(FieldDescription, FieldDate, FieldValue) {
		return Income{}, ErrMissingFields
	}

	date, err := ParseDate(fields[FieldDate])
	if err != nil {
		return Income{}, err
	}

	value, err := ParseAmount(fields[FieldValue], KindIncome)
	if err != nil {
		return Income{}, err
	}

	if value.GreaterThan(MaxValue) {
		return Income{}, ErrIncomeValueTooLarge
	}
	if !value.IsPositive() {
		return Income{}, ErrIncomeValueTooSmall
	}

	return NewIncome(fields[FieldDescription], date, value), nil
}

// ParseExpense builds an Expense from a field map.
// Unlike incomes, an expense must stay strictly below MaxValue.
func ParseExpense(fields Fields) (Expense, error) {
	if !fields.has(FieldCategory, FieldDescription, FieldDate, FieldValue) {
		return Expense{}, ErrMissingFields
	}

	date, err := ParseDate(fields[FieldDate])
	if err != nil {
		return Expense{}, err
	}

	value, err := ParseAmount(fields[FieldValue], KindExpense)
	if err != nil {
		return Expense{}, err
	}

	if value.GreaterThanOrEqual(MaxValue) {
		return Expense{}, ErrExpenseValueTooLarge
	}
	if !value.IsPositive() {
		return Expense{}, ErrExpenseValueTooSmall
	}

	return NewExpense(fields[FieldCategory], fields[FieldDescription], date, value), nil
}

// GetIncomeIndex reads the index field of an income command.
func GetIncomeIndex(fields Fields) (int, error) {
	text, ok := fields[FieldIndex]
	if !ok {
		return 0, ErrIndexNotFound
	}

	index, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidIndex
	}

	return index, nil
}

// GetExpenseIndex reads the index field of an expense command.
// Unparsable text reports the same failure as a missing field.
func GetExpenseIndex(fields Fields) (int, error) {
	text, ok := fields[FieldIndex]
	if !ok {
		return 0, ErrIndexNotFound
	}

	return ParseIndex(text)
}

// has reports whether every key is present with a non-empty value.
func (f Fields) has(keys ...string) bool {
	for _, key := range keys {
		if f[key] == "" {
			return false
		}
	}
	return true
}
