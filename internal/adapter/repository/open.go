package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/chching/internal/adapter/repository/file"
	"github.com/iho/chching/internal/adapter/repository/memory"
	"github.com/iho/chching/internal/adapter/repository/postgres"
	redisstore "github.com/iho/chching/internal/adapter/repository/redis"
	"github.com/iho/chching/internal/infrastructure/config"
	pginfra "github.com/iho/chching/internal/infrastructure/postgres"
	redisinfra "github.com/iho/chching/internal/infrastructure/redis"
	"github.com/iho/chching/internal/usecase"
)

// Open returns the store selected by cfg.Storage and a function releasing
// its connections.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (usecase.LedgerStore, func(), error) {
	noop := func() {}

	switch cfg.Storage {
	case config.StorageFile:
		return file.NewStore(cfg.LedgerFile), noop, nil

	case config.StorageMemory:
		return memory.NewStore(), noop, nil

	case config.StoragePostgres:
		pool, err := pginfra.NewPoolWithConfig(ctx, pginfra.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.DatabaseTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool, logger), pool.Close, nil

	case config.StorageRedis:
		client, err := redisinfra.NewClient(ctx, cfg.RedisURL, cfg.DatabaseTimeout)
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewStore(client, cfg.RedisKeyPrefix), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}
}

// StoreObserver records storage outcomes.
type StoreObserver interface {
	ObserveStore(operation string, err error)
}

type observedStore struct {
	usecase.LedgerStore
	observer StoreObserver
}

// Observe wraps store so every Load and Save is reported to observer.
func Observe(store usecase.LedgerStore, observer StoreObserver) usecase.LedgerStore {
	return &observedStore{LedgerStore: store, observer: observer}
}

func (s *observedStore) Load(ctx context.Context) (usecase.Snapshot, error) {
	snapshot, err := s.LedgerStore.Load(ctx)
	s.observer.ObserveStore("load", err)
	return snapshot, err
}

func (s *observedStore) Save(ctx context.Context, snapshot usecase.Snapshot) error {
	err := s.LedgerStore.Save(ctx, snapshot)
	s.observer.ObserveStore("save", err)
	return err
}
