package database

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresPool_InvalidURL(t *testing.T) {
	_, err := NewPostgresPool(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse database url")
}

func TestWithAfterConnect(t *testing.T) {
	cfg, err := pgxpool.ParseConfig("postgres://localhost:5432/isp_support")
	require.NoError(t, err)
	require.Nil(t, cfg.AfterConnect)

	WithAfterConnect(func(context.Context, *pgx.Conn) error { return nil })(cfg)
	assert.NotNil(t, cfg.AfterConnect)
}
