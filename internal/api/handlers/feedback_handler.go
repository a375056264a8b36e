package handlers

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// FeedbackService defines the interface for recording helpfulness feedback.
type FeedbackService interface {
	Record(ctx context.Context, query string, entityID int64, rating int) error
}

// FeedbackHandler handles HTTP requests for feedback submission.
type FeedbackHandler struct {
	service FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(service FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.FeedbackRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	// scenarioId arrives as a JSON number; reject fractional values like 1.5
	// instead of truncating them to a different entity's id.
	if req.ScenarioID != math.Trunc(req.ScenarioID) {
		response.RespondBadRequest(w, "scenarioId must be an integer")

		return
	}

	err := h.service.Record(r.Context(), req.Query, int64(req.ScenarioID), req.Rating)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			response.RespondBadRequest(w, err.Error())

			return
		}

		response.RespondInternalServerError(w, "Failed to record feedback")

		return
	}

	response.RespondJSON(w, http.StatusOK, models.FeedbackResponse{Success: true})
}
