package usecase

import (
	"context"
	"iter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
)

// Snapshot is the persisted content of a ledger.
type Snapshot struct {
	Incomes  []domain.Income
	Expenses []domain.Expense
}

// LedgerStore loads and saves ledger snapshots.
// Whatever is saved must load back as an equal ordered sequence.
type LedgerStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
}

// Renderer presents command output to the user.
type Renderer interface {
	ShowMessage(msg string)
	ShowError(err error)
	ShowIncomes(incomes iter.Seq2[int, domain.Income])
	ShowExpenses(expenses iter.Seq2[int, domain.Expense])
	ShowBalance(income, expense decimal.Decimal)
}

// CommandObserver records command executions.
type CommandObserver interface {
	ObserveCommand(command string, err error, duration time.Duration)
	SetEntries(incomes, expenses int)
}
