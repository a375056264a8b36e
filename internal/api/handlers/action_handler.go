package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// ActionService defines the interface for simulated action execution.
type ActionService interface {
	Execute(ctx context.Context, actionType string, req models.ActionRequest) (*models.ActionResponse, error)
}

// ActionAuditor records UI actions without blocking the caller.
type ActionAuditor interface {
	LogAction(actionType, itemName, itemType string, scenarioID *int64)
}

// ActionHandler handles HTTP requests for simulated actions and the action
// audit log.
type ActionHandler struct {
	service ActionService
	auditor ActionAuditor
}

// NewActionHandler creates a new action handler. auditor may be nil.
func NewActionHandler(service ActionService, auditor ActionAuditor) *ActionHandler {
	return &ActionHandler{service: service, auditor: auditor}
}

// Execute handles POST /actions/{actionType}.
func (h *ActionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	actionType := r.PathValue("actionType")

	var req models.ActionRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Execute(r.Context(), actionType, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownAction):
			response.RespondBadRequest(w, err.Error())
		case errors.Is(err, apperrors.ErrValidation):
			response.RespondBadRequest(w, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// The client went away; nothing useful to write.
		default:
			response.RespondInternalServerError(w, "Failed to execute action")
		}

		return
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// Log handles POST /actions: record a UI action for audit, nothing else.
func (h *ActionHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req models.ActionLogRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if req.ActionType == "" {
		response.RespondBadRequest(w, "actionType is required")

		return
	}

	if h.auditor != nil {
		h.auditor.LogAction(req.ActionType, req.ItemName, req.ItemType, req.ScenarioID)
	}

	response.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
