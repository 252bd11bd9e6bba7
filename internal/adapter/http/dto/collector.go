package dto

import (
	"iter"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
)

// Collector is a usecase.Renderer building a LedgerResponse.
type Collector struct {
	Response LedgerResponse

	messages []string
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// ShowMessage appends msg to the response message.
func (c *Collector) ShowMessage(msg string) {
	c.messages = append(c.messages, msg)
	c.Response.Message = strings.Join(c.messages, "\n")
}

// ShowError is a no-op. Failures reach the handler as the Execute error.
func (c *Collector) ShowError(error) {}

// ShowIncomes records the income list.
func (c *Collector) ShowIncomes(incomes iter.Seq2[int, domain.Income]) {
	c.Response.Incomes = []IncomeResponse{}
	for i, income := range incomes {
		c.Response.Incomes = append(c.Response.Incomes, IncomeFromDomain(i, income))
	}
}

// ShowExpenses records the expense list.
func (c *Collector) ShowExpenses(expenses iter.Seq2[int, domain.Expense]) {
	c.Response.Expenses = []ExpenseResponse{}
	for i, expense := range expenses {
		c.Response.Expenses = append(c.Response.Expenses, ExpenseFromDomain(i, expense))
	}
}

// ShowBalance records the totals.
func (c *Collector) ShowBalance(income, expense decimal.Decimal) {
	c.Response.Balance = &BalanceResponse{
		TotalIncome:  income.StringFixed(2),
		TotalExpense: expense.StringFixed(2),
		Balance:      income.Sub(expense).StringFixed(2),
	}
}
