package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
	"github.com/ispsupport/hub/internal/api/validation"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// ResolutionService defines the interface for resolution lookups.
type ResolutionService interface {
	GetByScenarioID(ctx context.Context, scenarioID int64) (*models.ResolutionResponse, error)
}

// ResolutionHandler handles HTTP requests for scenario resolutions.
type ResolutionHandler struct {
	service ResolutionService
}

// NewResolutionHandler creates a new resolution handler.
func NewResolutionHandler(service ResolutionService) *ResolutionHandler {
	return &ResolutionHandler{service: service}
}

// Get handles GET /resolution?scenarioId=N.
func (h *ResolutionHandler) Get(w http.ResponseWriter, r *http.Request) {
	var query models.ResolutionQuery
	if err := validation.ValidateAndDecodeQueryParams(r, &query); err != nil {
		validation.RespondValidationError(w, err)

		return
	}

	res, err := h.service.GetByScenarioID(r.Context(), query.ScenarioID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.RespondNotFound(w, "No resolution found for this scenario")

			return
		}

		response.RespondInternalServerError(w, "Failed to get resolution")

		return
	}

	response.RespondJSON(w, http.StatusOK, res)
}
