package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/iho/chching/internal/adapter/repository/record"
	"github.com/iho/chching/internal/usecase"
)

// DefaultPrefix namespaces ledger keys when no prefix is configured.
const DefaultPrefix = "chching:"

// Store implements usecase.LedgerStore with one Redis list per entry kind.
// Each list element is a JSON encoded record.Record.
type Store struct {
	client redis.Cmdable
	prefix string
}

// NewStore creates a Store using keys under prefix.
func NewStore(client redis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) incomesKey() string  { return s.prefix + "incomes" }
func (s *Store) expensesKey() string { return s.prefix + "expenses" }

// Ping checks the server connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Load reads both lists. Missing keys are empty lists.
func (s *Store) Load(ctx context.Context) (usecase.Snapshot, error) {
	incomes, err := s.readList(ctx, s.incomesKey())
	if err != nil {
		return usecase.Snapshot{}, err
	}

	expenses, err := s.readList(ctx, s.expensesKey())
	if err != nil {
		return usecase.Snapshot{}, err
	}

	return record.Document{Incomes: incomes, Expenses: expenses}.Snapshot()
}

func (s *Store) readList(ctx context.Context, key string) ([]record.Record, error) {
	values, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	records := make([]record.Record, 0, len(values))
	for _, v := range values {
		var r record.Record
		if err := json.Unmarshal([]byte(v), &r); err != nil {
			return nil, fmt.Errorf("failed to decode entry in %s: %w", key, err)
		}
		records = append(records, r)
	}

	return records, nil
}

// Save replaces both lists in a single MULTI/EXEC transaction.
func (s *Store) Save(ctx context.Context, snapshot usecase.Snapshot) error {
	doc := record.FromSnapshot(snapshot)

	incomes, err := encode(doc.Incomes)
	if err != nil {
		return err
	}
	expenses, err := encode(doc.Expenses)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.incomesKey(), s.expensesKey())
		if len(incomes) > 0 {
			pipe.RPush(ctx, s.incomesKey(), incomes...)
		}
		if len(expenses) > 0 {
			pipe.RPush(ctx, s.expensesKey(), expenses...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	return nil
}

func encode(records []record.Record) ([]any, error) {
	values := make([]any, 0, len(records))
	for _, r := range records {
		data, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("failed to encode entry: %w", err)
		}
		values = append(values, string(data))
	}
	return values, nil
}
