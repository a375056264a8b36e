package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// ErrEmptyQuery is returned for searches whose query is empty after trimming
// (used by handlers for status mapping).
var ErrEmptyQuery = errors.New("query is required and must be non-empty")

// Embedder provides query embeddings for search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CatalogSearcher provides the similarity read operation needed for search.
type CatalogSearcher interface {
	FindNearest(ctx context.Context, kind models.EntityKind, queryVector []float32, limit int) ([]models.Candidate, error)
}

// FeedbackAggregator provides the per-entity feedback aggregate.
type FeedbackAggregator interface {
	Aggregate(ctx context.Context, entityID int64) (models.FeedbackStats, error)
}

// SearchAuditor records search queries without blocking the caller.
type SearchAuditor interface {
	LogSearch(query string)
}

// SearchService performs semantic search over the catalog and enriches hits
// with their feedback aggregates.
type SearchService struct {
	embedder     Embedder
	catalog      CatalogSearcher
	feedback     FeedbackAggregator
	auditor      SearchAuditor
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// SearchServiceParams configures SearchService. Auditor may be nil (no search
// log); Logger falls back to slog.Default. MaxLimit caps the caller-supplied
// result limit and falls back to DefaultLimit when unset.
type SearchServiceParams struct {
	Embedder     Embedder
	Catalog      CatalogSearcher
	Feedback     FeedbackAggregator
	Auditor      SearchAuditor
	DefaultLimit int
	MaxLimit     int
	Logger       *slog.Logger
}

// NewSearchService creates a SearchService.
func NewSearchService(p SearchServiceParams) *SearchService {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxLimit := p.MaxLimit
	if maxLimit < p.DefaultLimit {
		maxLimit = p.DefaultLimit
	}

	return &SearchService{
		embedder:     p.Embedder,
		catalog:      p.Catalog,
		feedback:     p.Feedback,
		auditor:      p.Auditor,
		defaultLimit: p.DefaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

// Search embeds the query, finds the nearest catalog entries of the given
// kind, and joins each with its feedback aggregate. Results keep similarity
// order exactly. kind may be empty (defaults to scenario); limit may be zero
// (defaults to the configured limit) and is capped at the configured maximum.
func (s *SearchService) Search(ctx context.Context, query, kind string, limit int) ([]models.EnrichedResult, error) {
	entityKind, err := models.ParseEntityKind(kind)
	if err != nil {
		return nil, apperrors.NewValidationError("kind", err.Error())
	}

	if limit < 0 {
		return nil, apperrors.NewValidationError("limit", "limit must be a positive integer")
	}

	if limit == 0 {
		limit = s.defaultLimit
	} else if limit > s.maxLimit {
		limit = s.maxLimit
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if s.auditor != nil {
		s.auditor.LogSearch(query)
	}

	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		s.logger.Error("search: embed query failed", "error", err)

		return nil, fmt.Errorf("embed query: %w", err)
	}

	candidates, err := s.catalog.FindNearest(ctx, entityKind, embedding, limit)
	if err != nil {
		s.logger.Error("search: nearest failed", "error", err, "kind", entityKind)

		return nil, fmt.Errorf("find nearest: %w", err)
	}

	return s.compose(ctx, candidates), nil
}

// compose fans out one feedback aggregate per candidate and joins the
// aggregates into enriched results in the candidates' order. A failed lookup
// degrades that row to "no feedback data"; it never fails the composition.
func (s *SearchService) compose(ctx context.Context, candidates []models.Candidate) []models.EnrichedResult {
	results := make([]models.EnrichedResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)

	for i, c := range candidates {
		results[i] = models.EnrichedResult{
			Kind:        c.Kind,
			ID:          c.ID,
			Title:       c.Title,
			Description: c.Description,
			Metadata:    c.Metadata,
			Distance:    c.Distance,
		}

		g.Go(func() error {
			stats, err := s.feedback.Aggregate(gctx, c.ID)
			if err != nil {
				s.logger.Warn("search: feedback aggregate failed",
					"error", err, "kind", c.Kind, "id", c.ID)

				return nil
			}

			if stats.TotalFeedback > 0 {
				results[i].HelpfulCount = &stats.HelpfulCount
				results[i].TotalFeedback = &stats.TotalFeedback
				results[i].HelpfulPercentage = stats.HelpfulPercentage()
			}

			return nil
		})
	}

	// Aggregate errors are swallowed above, so Wait only synchronizes.
	_ = g.Wait()

	return results
}
