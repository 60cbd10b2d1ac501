// Package sqlite stores device state in a single-file SQLite database, which is
// what the CLI uses as its local storage.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    k TEXT PRIMARY KEY,
    v BLOB NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type KV struct {
	db *sql.DB
}

// Open creates the database file and its parent directory when missing. Use
// ":memory:" for a throwaway store.
func Open(ctx context.Context, path string) (*KV, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared and serializes writers
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}
	return &KV{db: db}, nil
}

func (k *KV) Ping(ctx context.Context) error {
	return k.db.PingContext(ctx)
}

func (k *KV) Close() error {
	return k.db.Close()
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := k.db.QueryRowContext(ctx, `SELECT v FROM kv_entries WHERE k = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, localstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	_, err := k.db.ExecContext(ctx, `
        INSERT INTO kv_entries (k, v, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = excluded.updated_at
    `, key, value)
	return err
}
