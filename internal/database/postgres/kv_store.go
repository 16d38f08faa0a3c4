package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/CookieClicker_Go/internal/database"
	"github.com/osse101/CookieClicker_Go/internal/database/postgres/migrations"
	"github.com/osse101/CookieClicker_Go/internal/domain"
)

// KVStore implements storage.Adapter on the kv_store table
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore creates a store on an open pool
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Migrate applies the embedded migrations
func (s *KVStore) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()
	return database.Migrate(ctx, db, goose.DialectPostgres, migrations.FS)
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.pool.Exec(ctx, queryUpsert, key, value); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, queryGetMany, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: get many: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	out := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", domain.ErrStorageUnavailable, err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: get many: %v", domain.ErrStorageUnavailable, err)
	}
	return out, nil
}

// SetMany writes every value in one transaction
func (s *KVStore) SetMany(ctx context.Context, values map[string]string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, database.ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for k, v := range values {
		batch.Queue(queryUpsert, k, v)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: set many: %v", domain.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, queryDelete, key); err != nil {
		return fmt.Errorf("%w: remove %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Keys lists the stored keys starting with prefix
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.pool.Query(ctx, queryListPrefix, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", domain.ErrStorageUnavailable, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", domain.ErrStorageUnavailable, err)
	}
	return keys, nil
}

// Ping checks the database connection
func (s *KVStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
