package cli

import (
	"fmt"
	"io"
	"iter"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
)

// DefaultCurrency is used when the configured code is unknown.
const DefaultCurrency = money.SGD

// UI renders command output as plain text.
type UI struct {
	out      io.Writer
	currency *money.Currency
}

// NewUI creates a UI writing to out and formatting amounts in currency.
func NewUI(out io.Writer, currency string) *UI {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	return &UI{out: out, currency: cur}
}

// ShowMessage prints a line.
func (u *UI) ShowMessage(msg string) {
	fmt.Fprintln(u.out, msg)
}

// ShowError prints a failure message.
func (u *UI) ShowError(err error) {
	fmt.Fprintf(u.out, "Error: %s\n", err)
}

// ShowIncomes prints the numbered income list.
func (u *UI) ShowIncomes(incomes iter.Seq2[int, domain.Income]) {
	fmt.Fprintln(u.out, "Incomes:")
	empty := true
	for i, income := range incomes {
		empty = false
		fmt.Fprintf(u.out, "%d. de: %s, da: %s, v: %s\n",
			i, income.Description, income.Date.Format(domain.DateLayout), u.Amount(income.Value))
	}
	if empty {
		fmt.Fprintln(u.out, "No entries")
	}
}

// ShowExpenses prints the numbered expense list.
func (u *UI) ShowExpenses(expenses iter.Seq2[int, domain.Expense]) {
	fmt.Fprintln(u.out, "Expenses:")
	empty := true
	for i, expense := range expenses {
		empty = false
		fmt.Fprintf(u.out, "%d. c: %s, de: %s, da: %s, v: %s\n",
			i, expense.Category, expense.Description, expense.Date.Format(domain.DateLayout), u.Amount(expense.Value))
	}
	if empty {
		fmt.Fprintln(u.out, "No entries")
	}
}

// ShowBalance prints both totals and their difference.
func (u *UI) ShowBalance(income, expense decimal.Decimal) {
	fmt.Fprintf(u.out, "Total income: %s\n", u.Amount(income))
	fmt.Fprintf(u.out, "Total expense: %s\n", u.Amount(expense))
	fmt.Fprintf(u.out, "Balance: %s\n", u.Amount(income.Sub(expense)))
}

// Amount formats value in the UI currency, rounded to its minor unit.
func (u *UI) Amount(value decimal.Decimal) string {
	minor := value.Shift(int32(u.currency.Fraction)).Round(0).IntPart()
	return u.currency.Formatter().Format(minor)
}
