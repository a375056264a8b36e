package service

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/ispsupport/hub/internal/errors"
)

// FeedbackStore provides the write operation for the feedback ledger.
type FeedbackStore interface {
	Insert(ctx context.Context, query string, entityID int64, rating int) error
}

// FeedbackService validates and records helpfulness feedback.
type FeedbackService struct {
	store  FeedbackStore
	logger *slog.Logger
}

// NewFeedbackService creates a FeedbackService. Logger may be nil.
func NewFeedbackService(store FeedbackStore, logger *slog.Logger) *FeedbackService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FeedbackService{store: store, logger: logger}
}

// Record validates and appends one feedback record. Validation failures are
// returned to the caller; storage failures are logged and swallowed because
// feedback is best-effort telemetry and must never break the caller's flow.
func (s *FeedbackService) Record(ctx context.Context, query string, entityID int64, rating int) error {
	if strings.TrimSpace(query) == "" {
		return apperrors.NewValidationError("query", "query is required")
	}

	if entityID <= 0 {
		return apperrors.NewValidationError("scenarioId", "scenarioId must be a positive integer")
	}

	if rating != 1 && rating != -1 {
		return apperrors.NewValidationError("rating", "rating must be 1 or -1")
	}

	if err := s.store.Insert(ctx, query, entityID, rating); err != nil {
		s.logger.Error("feedback: insert failed", "error", err, "entity_id", entityID)
	}

	return nil
}
