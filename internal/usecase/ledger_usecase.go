package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/chching/internal/domain"
)

// LedgerUseCase owns the income and expense lists of one ledger and runs
// commands against them one at a time.
type LedgerUseCase struct {
	mu       sync.Mutex
	incomes  *domain.IncomeList
	expenses *domain.ExpenseList
	store    LedgerStore
	observer CommandObserver
	logger   zerolog.Logger
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithObserver sets the command observer.
func WithObserver(observer CommandObserver) Option {
	return func(uc *LedgerUseCase) {
		uc.observer = observer
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(uc *LedgerUseCase) {
		uc.logger = logger
	}
}

// NewLedgerUseCase creates an empty ledger backed by store.
func NewLedgerUseCase(store LedgerStore, opts ...Option) *LedgerUseCase {
	uc := &LedgerUseCase{
		incomes:  domain.NewIncomeList(),
		expenses: domain.NewExpenseList(),
		store:    store,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Open replaces the lists with the stored snapshot.
func (uc *LedgerUseCase) Open(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot, err := uc.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	uc.incomes = domain.NewIncomeList(snapshot.Incomes...)
	uc.expenses = domain.NewExpenseList(snapshot.Expenses...)
	uc.observeEntries()

	uc.logger.Info().
		Int("incomes", uc.incomes.Len()).
		Int("expenses", uc.expenses.Len()).
		Msg("ledger loaded")

	return nil
}

// Execute runs cmd and saves the ledger if cmd changed it.
// Validation failures leave the ledger untouched and are returned as is.
func (uc *LedgerUseCase) Execute(ctx context.Context, cmd Command, ui Renderer) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	start := time.Now()
	err := uc.execute(ctx, cmd, ui)
	duration := time.Since(start)

	if uc.observer != nil {
		uc.observer.ObserveCommand(cmd.Name(), err, duration)
	}

	event := uc.logger.Debug()
	if err != nil && !domain.IsValidation(err) {
		event = uc.logger.Error()
	}
	event.
		Str("command", cmd.Name()).
		Dur("duration", duration).
		Err(err).
		Msg("command executed")

	return err
}

func (uc *LedgerUseCase) execute(ctx context.Context, cmd Command, ui Renderer) error {
	if err := cmd.Execute(ctx, uc.incomes, uc.expenses, ui); err != nil {
		return err
	}

	if !cmd.Mutates() {
		return nil
	}

	uc.observeEntries()

	if err := uc.store.Save(ctx, uc.snapshot()); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}

// Snapshot returns a copy of the current ledger content.
func (uc *LedgerUseCase) Snapshot() Snapshot {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.snapshot()
}

func (uc *LedgerUseCase) snapshot() Snapshot {
	return Snapshot{
		Incomes:  uc.incomes.Records(),
		Expenses: uc.expenses.Records(),
	}
}

func (uc *LedgerUseCase) observeEntries() {
	if uc.observer != nil {
		uc.observer.SetEntries(uc.incomes.Len(), uc.expenses.Len())
	}
}
