package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleExpenses(n int) []Expense {
	expenses := make([]Expense, 0, n)
	for i := 1; i <= n; i++ {
		expenses = append(expenses, NewExpense(
			"food",
			fmt.Sprintf("meal %d", i),
			time.Date(2023, time.April, i, 0, 0, 0, 0, time.UTC),
			decimal.NewFromInt(int64(i)),
		))
	}
	return expenses
}

func descriptions(list *ExpenseList) []string {
	var out []string
	for _, e := range list.Enumerate() {
		out = append(out, e.Description)
	}
	return out
}

func TestExpenseListAppendEnumerate(t *testing.T) {
	t.Parallel()

	list := NewExpenseList()
	for _, e := range sampleExpenses(3) {
		list.Append(e)
	}

	if list.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", list.Len())
	}

	var positions []int
	for i, e := range list.Enumerate() {
		positions = append(positions, i)
		if e.Description != fmt.Sprintf("meal %d", i) {
			t.Fatalf("entry %d out of order: %q", i, e.Description)
		}
	}
	if fmt.Sprint(positions) != "[1 2 3]" {
		t.Fatalf("expected 1-based positions, got %v", positions)
	}

	// restartable
	if got := descriptions(list); len(got) != 3 {
		t.Fatalf("expected second enumeration to yield 3, got %v", got)
	}
}

func TestExpenseListDeleteAt(t *testing.T) {
	t.Parallel()

	t.Run("shifts later entries", func(t *testing.T) {
		list := NewExpenseList(sampleExpenses(4)...)

		if err := list.DeleteAt(2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := fmt.Sprint(descriptions(list))
		if got != "[meal 1 meal 3 meal 4]" {
			t.Fatalf("unexpected entries after delete: %s", got)
		}
	})

	t.Run("delete first and last", func(t *testing.T) {
		list := NewExpenseList(sampleExpenses(3)...)

		if err := list.DeleteAt(3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := list.DeleteAt(1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := fmt.Sprint(descriptions(list))
		if got != "[meal 2]" {
			t.Fatalf("unexpected entries after delete: %s", got)
		}
	})

	t.Run("out of range leaves list unchanged", func(t *testing.T) {
		list := NewExpenseList(sampleExpenses(2)...)

		for _, index := range []int{0, -1, 3, 100} {
			err := list.DeleteAt(index)
			if !errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("DeleteAt(%d) expected ErrIndexOutOfRange, got %v", index, err)
			}
			if KindOf(err) != KindIndexBounds {
				t.Fatalf("DeleteAt(%d) expected index bounds kind", index)
			}
		}

		if list.Len() != 2 {
			t.Fatalf("expected list to keep 2 entries, got %d", list.Len())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		list := NewExpenseList()
		if err := list.DeleteAt(1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
		}
	})
}

func TestEnumerateSnapshot(t *testing.T) {
	t.Parallel()

	list := NewExpenseList(sampleExpenses(3)...)
	seq := list.Enumerate()

	if err := list.DeleteAt(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for range seq {
		count++
	}
	if count != 2 {
		t.Fatalf("expected sequence to read current list of 2, got %d", count)
	}

	snapshot := list.Records()
	snapshot[0].Description = "changed"
	if list.Records()[0].Description == "changed" {
		t.Fatalf("records must be copies")
	}
}

func TestEnumerateEmptyAndEarlyStop(t *testing.T) {
	t.Parallel()

	for range NewIncomeList().Enumerate() {
		t.Fatalf("empty list must yield nothing")
	}

	list := NewExpenseList(sampleExpenses(5)...)
	seen := 0
	for i := range list.Enumerate() {
		seen++
		if i == 2 {
			break
		}
	}
	if seen != 2 {
		t.Fatalf("expected to stop after 2, got %d", seen)
	}
}

func TestIncomeListTotal(t *testing.T) {
	t.Parallel()

	list := NewIncomeList(
		NewIncome("salary", dateValue, decimal.RequireFromString("1200.50")),
		NewIncome("bonus", dateValue, decimal.RequireFromString("99.50")),
	)

	if !list.Total().Equal(decimal.NewFromInt(1300)) {
		t.Fatalf("expected total 1300, got %s", list.Total())
	}

	if got := list.Records(); len(got) != 2 || got[1].Description != "bonus" {
		t.Fatalf("unexpected records: %+v", got)
	}

	if !NewExpenseList().Total().IsZero() {
		t.Fatalf("expected empty total to be zero")
	}
}
