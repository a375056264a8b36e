package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ispsupport/hub/internal/models"
)

// FeedbackRepository handles data access for the append-only feedback ledger.
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Insert appends one feedback record. Records are never updated or deleted;
// duplicates for the same entity are valid signal. The insert is a single
// statement, so a cancelled context persists nothing.
func (r *FeedbackRepository) Insert(ctx context.Context, query string, entityID int64, rating int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO isp_support.feedback (query, scenario_id, rating)
		VALUES ($1, $2, $3)`,
		query, entityID, rating,
	)
	if err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}

	return nil
}

// Aggregate computes the helpfulness statistics for one entity over the
// current ledger. No caching: the result reflects every record whose write
// completed before this read began.
func (r *FeedbackRepository) Aggregate(ctx context.Context, entityID int64) (models.FeedbackStats, error) {
	var stats models.FeedbackStats

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE rating = 1), COUNT(*)
		FROM isp_support.feedback
		WHERE scenario_id = $1`,
		entityID,
	).Scan(&stats.HelpfulCount, &stats.TotalFeedback)
	if err != nil {
		return models.FeedbackStats{}, fmt.Errorf("aggregate feedback: %w", err)
	}

	return stats, nil
}
