package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
	"github.com/ispsupport/hub/internal/service"
)

// SearchService defines the interface for semantic catalog search.
type SearchService interface {
	Search(ctx context.Context, query, kind string, limit int) ([]models.EnrichedResult, error)
}

// SearchHandler handles HTTP requests for semantic search.
type SearchHandler struct {
	service SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// Search handles POST /search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	results, err := h.service.Search(r.Context(), req.Query, req.Kind, req.Limit)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuery):
			response.RespondBadRequest(w, "query is required and must be non-empty")
		case errors.Is(err, apperrors.ErrValidation):
			response.RespondBadRequest(w, err.Error())
		default:
			// Embedding and storage failures stay in the logs.
			response.RespondInternalServerError(w, "Search failed")
		}

		return
	}

	if results == nil {
		results = []models.EnrichedResult{}
	}

	response.RespondJSON(w, http.StatusOK, models.SearchResponse{Results: results})
}
