// Package postgreskv implements kv.Store on PostgreSQL via the pgx stdlib
// driver.
package postgreskv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/schedax/schedax/internal/kv"
)

const ddl = `CREATE TABLE IF NOT EXISTS kv_records (
    key         TEXT PRIMARY KEY,
    value       TEXT NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

type pgStore struct {
	db *sql.DB
}

// Open connects with the pgx stdlib driver, verifies connectivity and
// ensures the kv_records table exists.
func Open(dsn string) (kv.Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgreskv: DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires an existing connection (used by tests and the factory).
func NewWithDB(db *sql.DB) (kv.Store, error) {
	if _, err := db.Exec(ddl); err != nil {
		return nil, fmt.Errorf("postgreskv: create table: %w", err)
	}
	return &pgStore{db: db}, nil
}

func (s *pgStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *pgStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO kv_records (key, value, updated_at) VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
    `, key, value)
	return err
}

func (s *pgStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = $1`, key)
	return err
}

func (s *pgStore) RemoveMany(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = ANY($1)`, keys)
	return err
}

func (s *pgStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
