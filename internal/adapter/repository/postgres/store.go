package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/chching/internal/domain"
	"github.com/iho/chching/internal/usecase"
)

const (
	selectEntries = `SELECT kind, category, description, entry_date, value::text
FROM ledger_entries
ORDER BY kind, position`

	deleteEntries = `DELETE FROM ledger_entries`

	insertEntry = `INSERT INTO ledger_entries (id, kind, position, category, description, entry_date, value)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
)

type pgxPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Store implements usecase.LedgerStore on a ledger_entries table.
type Store struct {
	pool    pgxPool
	retrier *Retrier
	newID   func() string
}

// NewStore creates a Store on pool.
func NewStore(pool *pgxpool.Pool, logger zerolog.Logger) *Store {
	return newStoreWithPool(pool, NewRetrier(logger))
}

func newStoreWithPool(pool pgxPool, retrier *Retrier) *Store {
	return &Store{
		pool:    pool,
		retrier: retrier,
		newID:   func() string { return ulid.Make().String() },
	}
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Load reads every entry in position order.
func (s *Store) Load(ctx context.Context) (usecase.Snapshot, error) {
	var snapshot usecase.Snapshot

	err := s.retrier.Retry(ctx, func() error {
		var err error
		snapshot, err = s.load(ctx)
		return err
	})
	if err != nil {
		return usecase.Snapshot{}, fmt.Errorf("failed to load entries: %w", err)
	}

	return snapshot, nil
}

func (s *Store) load(ctx context.Context) (usecase.Snapshot, error) {
	rows, err := s.pool.Query(ctx, selectEntries)
	if err != nil {
		return usecase.Snapshot{}, err
	}
	defer rows.Close()

	var snapshot usecase.Snapshot
	for rows.Next() {
		var (
			kind, category, description, valueText string
			date                                   time.Time
		)
		if err := rows.Scan(&kind, &category, &description, &date, &valueText); err != nil {
			return usecase.Snapshot{}, err
		}

		value, err := decimal.NewFromString(valueText)
		if err != nil {
			return usecase.Snapshot{}, fmt.Errorf("invalid stored value %q: %w", valueText, err)
		}

		switch domain.RecordKind(kind) {
		case domain.KindIncome:
			snapshot.Incomes = append(snapshot.Incomes, domain.NewIncome(description, date, value))
		case domain.KindExpense:
			snapshot.Expenses = append(snapshot.Expenses, domain.NewExpense(category, description, date, value))
		default:
			return usecase.Snapshot{}, fmt.Errorf("unknown entry kind %q", kind)
		}
	}

	return snapshot, rows.Err()
}

// Save replaces all entries with snapshot in one transaction.
func (s *Store) Save(ctx context.Context, snapshot usecase.Snapshot) error {
	err := s.retrier.Retry(ctx, func() error {
		return s.save(ctx, snapshot)
	})
	if err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}

	return nil
}

func (s *Store) save(ctx context.Context, snapshot usecase.Snapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, deleteEntries); err != nil {
		return err
	}

	for i, income := range snapshot.Incomes {
		if err := s.insert(ctx, tx, domain.KindIncome, i+1, "", income.Description, income.Date, income.Value); err != nil {
			return err
		}
	}

	for i, expense := range snapshot.Expenses {
		if err := s.insert(ctx, tx, domain.KindExpense, i+1, expense.Category, expense.Description, expense.Date, expense.Value); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *Store) insert(ctx context.Context, tx pgx.Tx, kind domain.RecordKind, position int, category, description string, date time.Time, value decimal.Decimal) error {
	_, err := tx.Exec(ctx, insertEntry,
		s.newID(),
		string(kind),
		position,
		category,
		description,
		pgtype.Date{Time: date, Valid: true},
		decimalToNumeric(value),
	)
	return err
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}
