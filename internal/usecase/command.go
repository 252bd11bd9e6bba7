package usecase

import (
	"context"

	"github.com/iho/chching/internal/domain"
)

// Command performs one mutation or query on a ledger.
type Command interface {
	// Name is the keyword the command is known by.
	Name() string
	// Mutates reports whether a successful run changes the ledger.
	Mutates() bool
	Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error
}

// AddIncomeCommand parses an income and appends it.
type AddIncomeCommand struct {
	Fields domain.Fields
}

func (c AddIncomeCommand) Name() string  { return "add income" }
func (c AddIncomeCommand) Mutates() bool { return true }

// Execute parses the fields and appends the income.
func (c AddIncomeCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	income, err := domain.ParseIncome(c.Fields)
	if err != nil {
		return err
	}

	incomes.Append(income)
	ui.ShowMessage("Income added, here is the updated list:")
	ui.ShowIncomes(incomes.Enumerate())
	return nil
}

// AddExpenseCommand parses an expense and appends it.
type AddExpenseCommand struct {
	Fields domain.Fields
}

func (c AddExpenseCommand) Name() string  { return "add expense" }
func (c AddExpenseCommand) Mutates() bool { return true }

// Execute parses the fields and appends the expense.
func (c AddExpenseCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	expense, err := domain.ParseExpense(c.Fields)
	if err != nil {
		return err
	}

	expenses.Append(expense)
	ui.ShowMessage("Expense added, here is the updated list:")
	ui.ShowExpenses(expenses.Enumerate())
	return nil
}

// DeleteIncomeCommand removes the income at a 1-based index.
type DeleteIncomeCommand struct {
	Index int
}

func (c DeleteIncomeCommand) Name() string  { return "delete income" }
func (c DeleteIncomeCommand) Mutates() bool { return true }

// Execute deletes the income and renders the remaining incomes.
func (c DeleteIncomeCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	if err := incomes.DeleteAt(c.Index); err != nil {
		return err
	}

	ui.ShowMessage("Income deleted, here is the updated list:")
	ui.ShowIncomes(incomes.Enumerate())
	return nil
}

// DeleteExpenseCommand removes the expense at a 1-based index.
type DeleteExpenseCommand struct {
	Index int
}

func (c DeleteExpenseCommand) Name() string  { return "delete expense" }
func (c DeleteExpenseCommand) Mutates() bool { return true }

// Execute deletes the expense and renders the remaining expenses.
func (c DeleteExpenseCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	if err := expenses.DeleteAt(c.Index); err != nil {
		return err
	}

	ui.ShowMessage("Expense deleted, here is the updated list:")
	ui.ShowExpenses(expenses.Enumerate())
	return nil
}

// ListCommand renders both lists.
type ListCommand struct{}

func (ListCommand) Name() string  { return "list" }
func (ListCommand) Mutates() bool { return false }

func (ListCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	ui.ShowIncomes(incomes.Enumerate())
	ui.ShowExpenses(expenses.Enumerate())
	return nil
}

// BalanceCommand renders the income and expense totals.
type BalanceCommand struct{}

func (BalanceCommand) Name() string  { return "balance" }
func (BalanceCommand) Mutates() bool { return false }

func (BalanceCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	ui.ShowBalance(incomes.Total(), expenses.Total())
	return nil
}

// SummaryCommand renders both lists and their totals from one ledger state.
type SummaryCommand struct{}

func (SummaryCommand) Name() string  { return "summary" }
func (SummaryCommand) Mutates() bool { return false }

func (SummaryCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	ui.ShowIncomes(incomes.Enumerate())
	ui.ShowExpenses(expenses.Enumerate())
	ui.ShowBalance(incomes.Total(), expenses.Total())
	return nil
}

// HelpCommand renders the usage text.
type HelpCommand struct {
	Usage string
}

func (HelpCommand) Name() string  { return "help" }
func (HelpCommand) Mutates() bool { return false }

func (c HelpCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	ui.ShowMessage(c.Usage)
	return nil
}

// ExitCommand ends an interactive session.
type ExitCommand struct{}

func (ExitCommand) Name() string  { return "exit" }
func (ExitCommand) Mutates() bool { return false }

func (ExitCommand) Execute(ctx context.Context, incomes *domain.IncomeList, expenses *domain.ExpenseList, ui Renderer) error {
	ui.ShowMessage("Bye. Hope to see you again soon!")
	return nil
}

// IsExit reports whether cmd ends an interactive session.
func IsExit(cmd Command) bool {
	_, ok := cmd.(ExitCommand)
	return ok
}
