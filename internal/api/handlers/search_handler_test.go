package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
	"github.com/ispsupport/hub/internal/service"
)

type mockSearchService struct {
	searchFn func(ctx context.Context, query, kind string, limit int) ([]models.EnrichedResult, error)
}

func (m *mockSearchService) Search(
	ctx context.Context, query, kind string, limit int,
) ([]models.EnrichedResult, error) {
	return m.searchFn(ctx, query, kind, limit)
}

func TestSearchHandler_Search(t *testing.T) {
	t.Run("returns enriched results", func(t *testing.T) {
		pct := 80
		helpful, total := int64(4), int64(5)

		h := NewSearchHandler(&mockSearchService{
			searchFn: func(_ context.Context, query, kind string, limit int) ([]models.EnrichedResult, error) {
				assert.Equal(t, "no internet", query)
				assert.Equal(t, "scenario", kind)
				assert.Zero(t, limit, "omitted limit decodes as zero")

				return []models.EnrichedResult{{
					Kind: models.KindScenario, ID: 3, Title: "Router offline", Distance: 0.12,
					HelpfulCount: &helpful, TotalFeedback: &total, HelpfulPercentage: &pct,
				}}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search",
			strings.NewReader(`{"query":"no internet","kind":"scenario"}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, int64(3), resp.Results[0].ID)
		require.NotNil(t, resp.Results[0].HelpfulPercentage)
		assert.Equal(t, 80, *resp.Results[0].HelpfulPercentage)
	})

	t.Run("limit from the body reaches the service", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(_ context.Context, _, _ string, limit int) ([]models.EnrichedResult, error) {
				assert.Equal(t, 10, limit)

				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search",
			strings.NewReader(`{"query":"no internet","limit":10}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative limit is 400", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				return nil, apperrors.NewValidationError("limit", "limit must be a positive integer")
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search",
			strings.NewReader(`{"query":"no internet","limit":-3}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty result set encodes as empty array", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"anything"}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"results":[]}`, rec.Body.String())
	})

	t.Run("empty query is 400", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				return nil, service.ErrEmptyQuery
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"  "}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))
	})

	t.Run("invalid kind is 400", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				return nil, apperrors.NewValidationError("kind", "invalid kind")
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search",
			strings.NewReader(`{"query":"x","kind":"router"}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("embedding failure is a generic 500", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				return nil, apperrors.NewEmbeddingUnavailableError(errors.New("api key rejected"))
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":"x"}`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "api key", "internal detail must not leak")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := NewSearchHandler(&mockSearchService{
			searchFn: func(context.Context, string, string, int) ([]models.EnrichedResult, error) {
				t.Fatal("service must not be called")

				return nil, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"query":`))
		rec := httptest.NewRecorder()
		h.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
