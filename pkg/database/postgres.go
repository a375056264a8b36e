// Package database builds the pgx connection pool shared by the API server
// and the seed command.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pingTimeout bounds the startup connectivity check so a wrong DATABASE_URL
// fails fast instead of hanging until the caller's context expires.
const pingTimeout = 5 * time.Second

// PoolOption adjusts the pool configuration before the pool is created.
type PoolOption func(*pgxpool.Config)

// WithAfterConnect registers a callback run on every new connection. Both
// commands use it to register pgvector types so embedding vectors can be
// bound and scanned directly.
func WithAfterConnect(fn func(context.Context, *pgx.Conn) error) PoolOption {
	return func(cfg *pgxpool.Config) {
		cfg.AfterConnect = fn
	}
}

// NewPostgresPool parses databaseURL, applies opts, and returns a pool that
// has been verified reachable.
func NewPostgresPool(ctx context.Context, databaseURL string, opts ...PoolOption) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("Connected to PostgreSQL", "database", cfg.ConnConfig.Database)

	return pool, nil
}
