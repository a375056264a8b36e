package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

type mockActionService struct {
	executeFn func(ctx context.Context, actionType string, req models.ActionRequest) (*models.ActionResponse, error)
}

func (m *mockActionService) Execute(
	ctx context.Context, actionType string, req models.ActionRequest,
) (*models.ActionResponse, error) {
	return m.executeFn(ctx, actionType, req)
}

type mockActionAuditor struct {
	mu      sync.Mutex
	entries []string
}

func (m *mockActionAuditor) LogAction(actionType, _, _ string, _ *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, actionType)
}

func execRequest(t *testing.T, h *ActionHandler, actionType, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/actions/"+actionType, strings.NewReader(body))
	req.SetPathValue("actionType", actionType)
	rec := httptest.NewRecorder()
	h.Execute(rec, req)

	return rec
}

func TestActionHandler_Execute(t *testing.T) {
	t.Run("successful action", func(t *testing.T) {
		h := NewActionHandler(&mockActionService{
			executeFn: func(_ context.Context, actionType string, req models.ActionRequest) (*models.ActionResponse, error) {
				assert.Equal(t, "reset-router", actionType)
				assert.Equal(t, "gw-1", req.EquipmentID)

				return &models.ActionResponse{
					Success:   true,
					Message:   "Router gw-1 reset successfully",
					Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}, nil)

		rec := execRequest(t, h, "reset-router", `{"equipmentId":"gw-1"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.ActionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Router gw-1 reset successfully", resp.Message)
	})

	t.Run("unknown action is 400", func(t *testing.T) {
		h := NewActionHandler(&mockActionService{
			executeFn: func(_ context.Context, actionType string, _ models.ActionRequest) (*models.ActionResponse, error) {
				return nil, apperrors.NewUnknownActionError(actionType)
			},
		}, nil)

		rec := execRequest(t, h, "launch-satellite", `{"equipmentId":"gw-1"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "launch-satellite")
	})

	t.Run("missing identifier is 400", func(t *testing.T) {
		h := NewActionHandler(&mockActionService{
			executeFn: func(context.Context, string, models.ActionRequest) (*models.ActionResponse, error) {
				return nil, apperrors.NewValidationError("subscriberId", "Subscriber ID or name required")
			},
		}, nil)

		rec := execRequest(t, h, "speed-test", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Subscriber ID or name required")
	})
}

func TestActionHandler_Log(t *testing.T) {
	t.Run("records the action", func(t *testing.T) {
		auditor := &mockActionAuditor{}
		h := NewActionHandler(&mockActionService{}, auditor)

		req := httptest.NewRequest(http.MethodPost, "/actions",
			strings.NewReader(`{"actionType":"open_work_order","itemName":"Truck Roll","itemType":"work_order"}`))
		rec := httptest.NewRecorder()
		h.Log(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())

		auditor.mu.Lock()
		defer auditor.mu.Unlock()
		assert.Equal(t, []string{"open_work_order"}, auditor.entries)
	})

	t.Run("missing actionType is 400", func(t *testing.T) {
		auditor := &mockActionAuditor{}
		h := NewActionHandler(&mockActionService{}, auditor)

		req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(`{"itemName":"Truck Roll"}`))
		rec := httptest.NewRecorder()
		h.Log(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		auditor.mu.Lock()
		defer auditor.mu.Unlock()
		assert.Empty(t, auditor.entries)
	})
}
