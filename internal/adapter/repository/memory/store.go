package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/iho/chching/internal/usecase"
)

// Store keeps the last saved snapshot in process memory.
type Store struct {
	mu       sync.RWMutex
	snapshot usecase.Snapshot
}

// NewStore creates a Store holding an empty ledger.
func NewStore() *Store {
	return &Store{}
}

// Load returns a copy of the last saved snapshot.
func (s *Store) Load(ctx context.Context) (usecase.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return usecase.Snapshot{
		Incomes:  slices.Clone(s.snapshot.Incomes),
		Expenses: slices.Clone(s.snapshot.Expenses),
	}, nil
}

// Save replaces the stored snapshot.
func (s *Store) Save(ctx context.Context, snapshot usecase.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = usecase.Snapshot{
		Incomes:  slices.Clone(snapshot.Incomes),
		Expenses: slices.Clone(snapshot.Expenses),
	}
	return nil
}
