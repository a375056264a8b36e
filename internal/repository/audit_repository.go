package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository handles the search_log and action_log tables. Both are
// best-effort telemetry written by detached tasks; callers never block on them.
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// InsertSearchLog records one search query.
func (r *AuditRepository) InsertSearchLog(ctx context.Context, query string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO isp_support.search_log (query) VALUES ($1)`, query)
	if err != nil {
		return fmt.Errorf("insert search log: %w", err)
	}

	return nil
}

// InsertActionLog records one UI action (e.g. opening a work order from a
// resolution step).
func (r *AuditRepository) InsertActionLog(
	ctx context.Context, actionType, itemName, itemType string, scenarioID *int64,
) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO isp_support.action_log (action_type, item_name, item_type, scenario_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)`,
		actionType, itemName, itemType, scenarioID)
	if err != nil {
		return fmt.Errorf("insert action log: %w", err)
	}

	return nil
}
