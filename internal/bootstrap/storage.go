package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/database"
	"github.com/osse101/CookieClicker_Go/internal/database/postgres"
	"github.com/osse101/CookieClicker_Go/internal/database/sqlite"
	"github.com/osse101/CookieClicker_Go/internal/storage"
)

// Store is the opened persistence adapter with the decorators the config asks for
type Store struct {
	storage.Adapter

	// Backend is the undecorated adapter, used for key listing
	Backend storage.Adapter

	close func()
}

// Close releases the backend connection
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore opens the adapter selected by cfg.StorageDriver.
// SQL backends are migrated before use. The adapter is wrapped with JSON value
// encoding and a read-through cache when those are enabled.
func OpenStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	store := &Store{}

	switch cfg.StorageDriver {
	case config.StorageMemory, "":
		store.Backend = storage.NewMemory()

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		kv := postgres.NewKVStore(pool)
		if err := kv.Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		store.Backend = kv
		store.close = pool.Close

	case config.StorageSQLite:
		kv, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		store.Backend = kv
		store.close = func() {
			if err := kv.Close(); err != nil {
				slog.Error(LogMsgStorageCloseFailed, "error", err)
			}
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageDriver, cfg.StorageDriver)
	}

	store.Adapter = store.Backend
	if cfg.StructuredValues {
		store.Adapter = storage.NewJSONValues(store.Adapter)
	}
	if cfg.CacheSize > 0 {
		store.Adapter = storage.NewCached(store.Adapter, cfg.CacheSize, cfg.CacheTTL)
	}

	slog.Info(LogMsgStorageOpened,
		"driver", cfg.StorageDriver,
		"json_values", cfg.StructuredValues,
		"cache_size", cfg.CacheSize)

	return store, nil
}

// Ping checks the backend when it supports it
func (s *Store) Ping(ctx context.Context) error {
	return storage.Ping(ctx, s.Backend)
}
