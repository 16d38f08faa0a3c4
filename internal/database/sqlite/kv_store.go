// Package sqlite provides a SQLite-backed key/value store for saved games.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/osse101/CookieClicker_Go/internal/database"
	"github.com/osse101/CookieClicker_Go/internal/database/sqlite/migrations"
	"github.com/osse101/CookieClicker_Go/internal/domain"
)

const (
	queryGet    = `SELECT value FROM kv_store WHERE key = ?`
	queryUpsert = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	queryDelete     = `DELETE FROM kv_store WHERE key = ?`
	queryListPrefix = `SELECT key FROM kv_store WHERE key LIKE ? ESCAPE '\' ORDER BY key`
)

// KVStore implements storage.Adapter on a SQLite file
type KVStore struct {
	db *sql.DB
}

// Open opens the database at path and applies the embedded migrations
func Open(ctx context.Context, path string) (*KVStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := "file:" + filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.Migrate(ctx, db, goose.DialectSQLite3, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close closes the SQLite handle
func (s *KVStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, queryGet, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, queryUpsert, key, value); err != nil {
		return fmt.Errorf("%w: set %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

func (s *KVStore) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	query := `SELECT key, value FROM kv_store WHERE key IN (?` + strings.Repeat(`, ?`, len(keys)-1) + `)`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: get many: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

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
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, database.ErrMsgFailedToBeginTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, queryUpsert)
	if err != nil {
		return fmt.Errorf("%w: prepare: %v", domain.ErrStorageUnavailable, err)
	}
	defer stmt.Close()

	for k, v := range values {
		if _, err := stmt.ExecContext(ctx, k, v); err != nil {
			return fmt.Errorf("%w: set %s: %v", domain.ErrStorageUnavailable, k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, queryDelete, key); err != nil {
		return fmt.Errorf("%w: remove %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}

// Keys lists the stored keys starting with prefix
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	rows, err := s.db.QueryContext(ctx, queryListPrefix, r.Replace(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("%w: scan: %v", domain.ErrStorageUnavailable, err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Ping checks the database handle
func (s *KVStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
