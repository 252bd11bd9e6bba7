package dto

import (
	"github.com/iho/chching/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// IncomeResponse represents an income with its 1-based position.
type IncomeResponse struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Value       string `json:"value"`
}

// IncomeFromDomain converts a domain income to response.
func IncomeFromDomain(index int, i domain.Income) IncomeResponse {
	return IncomeResponse{
		Index:       index,
		Description: i.Description,
		Date:        i.Date.Format(domain.DateLayout),
		Value:       i.Value.StringFixed(2),
	}
}

// ExpenseResponse represents an expense with its 1-based position.
type ExpenseResponse struct {
	Index       int    `json:"index"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Value       string `json:"value"`
}

// ExpenseFromDomain converts a domain expense to response.
func ExpenseFromDomain(index int, e domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		Index:       index,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date.Format(domain.DateLayout),
		Value:       e.Value.StringFixed(2),
	}
}

// BalanceResponse represents both totals and their difference.
type BalanceResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

// LedgerResponse is the body of every ledger endpoint. Sections a command
// did not render are nil and omitted; a rendered empty list encodes as [].
type LedgerResponse struct {
	Message  string            `json:"message,omitempty"`
	Incomes  []IncomeResponse  `json:"incomes,omitzero"`
	Expenses []ExpenseResponse `json:"expenses,omitzero"`
	Balance  *BalanceResponse  `json:"balance,omitzero"`
}
