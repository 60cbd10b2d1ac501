package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    k TEXT PRIMARY KEY,
    v BYTEA NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type KV struct {
	pool *pgxpool.Pool
}

func NewKV(pool *pgxpool.Pool) *KV {
	return &KV{pool: pool}
}

// Connect opens a pool, checks connectivity and makes sure the table exists.
func Connect(ctx context.Context, dsn string) (*KV, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}
	kv := NewKV(pool)
	if err := kv.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return kv, nil
}

func (k *KV) Migrate(ctx context.Context) error {
	if _, err := k.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init pg schema: %w", err)
	}
	return nil
}

func (k *KV) Ping(ctx context.Context) error {
	return k.pool.Ping(ctx)
}

func (k *KV) Close() {
	k.pool.Close()
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := k.pool.QueryRow(ctx, `SELECT v FROM kv_entries WHERE k = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, localstore.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	_, err := k.pool.Exec(ctx, `
        INSERT INTO kv_entries (k, v) VALUES ($1, $2)
        ON CONFLICT (k) DO UPDATE SET v = EXCLUDED.v, updated_at = now()
    `, key, value)
	return err
}
