package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/ispsupport/hub/internal/api/response"
	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// WorkOrderService defines the interface for work-order lookups.
type WorkOrderService interface {
	ListNames(ctx context.Context) ([]string, error)
	GetByName(ctx context.Context, name string) (*models.WorkOrder, error)
}

// WorkOrderHandler handles HTTP requests for the work-order catalog.
type WorkOrderHandler struct {
	service WorkOrderService
}

// NewWorkOrderHandler creates a new work-order handler.
func NewWorkOrderHandler(service WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{service: service}
}

// Get handles GET /work-order. With ?name=X it returns that work order;
// without it, the full name list in catalog order.
func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		names, err := h.service.ListNames(r.Context())
		if err != nil {
			response.RespondInternalServerError(w, "Failed to list work orders")

			return
		}

		if names == nil {
			names = []string{}
		}

		response.RespondJSON(w, http.StatusOK, models.WorkOrderNamesResponse{Names: names})

		return
	}

	wo, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.RespondNotFound(w, "Work order not found")

			return
		}

		response.RespondInternalServerError(w, "Failed to get work order")

		return
	}

	response.RespondJSON(w, http.StatusOK, wo)
}
