package record

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
	"github.com/iho/chching/internal/usecase"
)

// Record is the storage form of an income or expense.
// Dates use the DD-MM-YYYY layout, values their exact decimal string.
type Record struct {
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
	Description string `json:"description"        yaml:"description"`
	Date        string `json:"date"               yaml:"date"`
	Value       string `json:"value"              yaml:"value"`
}

// FromIncome converts an income to its storage form.
func FromIncome(i domain.Income) Record {
	return Record{
		Description: i.Description,
		Date:        i.Date.Format(domain.DateLayout),
		Value:       i.Value.String(),
	}
}

// FromExpense converts an expense to its storage form.
func FromExpense(e domain.Expense) Record {
	return Record{
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format(domain.DateLayout),
		Value:       e.Value.String(),
	}
}

// Income converts r back to an income.
func (r Record) Income() (domain.Income, error) {
	date, value, err := r.parse()
	if err != nil {
		return domain.Income{}, err
	}
	return domain.NewIncome(r.Description, date, value), nil
}

// Expense converts r back to an expense.
func (r Record) Expense() (domain.Expense, error) {
	date, value, err := r.parse()
	if err != nil {
		return domain.Expense{}, err
	}
	return domain.NewExpense(r.Category, r.Description, date, value), nil
}

func (r Record) parse() (time.Time, decimal.Decimal, error) {
	date, err := time.Parse(domain.DateLayout, r.Date)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid stored date %q: %w", r.Date, err)
	}

	value, err := decimal.NewFromString(r.Value)
	if err != nil {
		return time.Time{}, decimal.Zero, fmt.Errorf("invalid stored value %q: %w", r.Value, err)
	}

	return date, value, nil
}

// Document is the storage form of a whole snapshot.
type Document struct {
	Incomes  []Record `json:"incomes"  yaml:"incomes"`
	Expenses []Record `json:"expenses" yaml:"expenses"`
}

// FromSnapshot converts a snapshot to its storage form.
func FromSnapshot(s usecase.Snapshot) Document {
	doc := Document{
		Incomes:  make([]Record, 0, len(s.Incomes)),
		Expenses: make([]Record, 0, len(s.Expenses)),
	}
	for _, i := range s.Incomes {
		doc.Incomes = append(doc.Incomes, FromIncome(i))
	}
	for _, e := range s.Expenses {
		doc.Expenses = append(doc.Expenses, FromExpense(e))
	}
	return doc
}

// Snapshot converts d back to a snapshot.
func (d Document) Snapshot() (usecase.Snapshot, error) {
	var s usecase.Snapshot
	for n, r := range d.Incomes {
		income, err := r.Income()
		if err != nil {
			return usecase.Snapshot{}, fmt.Errorf("income %d: %w", n+1, err)
		}
		s.Incomes = append(s.Incomes, income)
	}
	for n, r := range d.Expenses {
		expense, err := r.Expense()
		if err != nil {
			return usecase.Snapshot{}, fmt.Errorf("expense %d: %w", n+1, err)
		}
		s.Expenses = append(s.Expenses, expense)
	}
	return s, nil
}
