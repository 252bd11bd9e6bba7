package domain

import (
	"fmt"
	"iter"
	"sync"

	"github.com/shopspring/decimal"
)

// entryList is an ordered collection addressed by 1-based positions.
type entryList[T any] struct {
	mu      sync.RWMutex
	entries []T
	value   func(T) decimal.Decimal
}

// Append adds a record to the end of the list.
func (l *entryList[T]) Append(record T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, record)
}

// DeleteAt removes the record at the 1-based index.
func (l *entryList[T]) DeleteAt(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 1 || index > len(l.entries) {
		return fmt.Errorf("%w: list has %d entries", ErrIndexOutOfRange, len(l.entries))
	}

	l.entries = append(l.entries[:index-1], l.entries[index:]...)
	return nil
}

// Enumerate yields each record with its 1-based position.
// The sequence reads a snapshot taken when iteration starts.
func (l *entryList[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, record := range l.Records() {
			if !yield(i+1, record) {
				return
			}
		}
	}
}

// Records returns a copy of the records in insertion order.
func (l *entryList[T]) Records() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	records := make([]T, len(l.entries))
	copy(records, l.entries)
	return records
}

// Len returns the number of records.
func (l *entryList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.entries)
}

// Total sums the values of all records.
func (l *entryList[T]) Total() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	for _, record := range l.entries {
		total = total.Add(l.value(record))
	}
	return total
}

// IncomeList holds the incomes of a ledger.
type IncomeList struct {
	entryList[Income]
}

// NewIncomeList creates an IncomeList holding the given records.
func NewIncomeList(records ...Income) *IncomeList {
	l := &IncomeList{}
	l.value = func(i Income) decimal.Decimal { return i.Value }
	l.entries = append([]Income(nil), records...)
	return l
}

// ExpenseList holds the expenses of a ledger.
type ExpenseList struct {
	entryList[Expense]
}

// NewExpenseList creates an ExpenseList holding the given records.
func NewExpenseList(records ...Expense) *ExpenseList {
	l := &ExpenseList{}
	l.value = func(e Expense) decimal.Decimal { return e.Value }
	l.entries = append([]Expense(nil), records...)
	return l
}
