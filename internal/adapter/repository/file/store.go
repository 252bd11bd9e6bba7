package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iho/chching/internal/adapter/repository/record"
	"github.com/iho/chching/internal/usecase"
)

// Store persists the ledger as a YAML document on disk.
type Store struct {
	path string
}

// NewStore creates a Store for the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the ledger file. A missing file is an empty ledger.
func (s *Store) Load(ctx context.Context) (usecase.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return usecase.Snapshot{}, nil
	}
	if err != nil {
		return usecase.Snapshot{}, fmt.Errorf("failed to read ledger file: %w", err)
	}

	var doc record.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return usecase.Snapshot{}, fmt.Errorf("failed to decode ledger file %s: %w", s.path, err)
	}

	return doc.Snapshot()
}

// Save writes the ledger file, replacing it atomically.
func (s *Store) Save(ctx context.Context, snapshot usecase.Snapshot) error {
	data, err := yaml.Marshal(record.FromSnapshot(snapshot))
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace ledger file: %w", err)
	}

	return nil
}
