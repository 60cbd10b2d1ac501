package mysql

import (
	"context"
	"database/sql"
	"errors"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

// KVRepository keeps device state in the kv_entries table:
//
//	CREATE TABLE kv_entries (
//	    k VARCHAR(191) PRIMARY KEY,
//	    v MEDIUMBLOB NOT NULL,
//	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	)
type KVRepository struct {
	db *sql.DB
}

func NewKVRepository(db *sql.DB) *KVRepository {
	return &KVRepository{db: db}
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var v []byte
	err := r.db.QueryRowContext(ctx, `SELECT v FROM kv_entries WHERE k = ?`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, localstore.ErrKeyNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO kv_entries (k, v)
        VALUES (?, ?)
        ON DUPLICATE KEY UPDATE v = VALUES(v)
    `, key, value)
	return err
}
