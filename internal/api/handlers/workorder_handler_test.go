package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

type mockWorkOrderService struct {
	listNamesFn func(ctx context.Context) ([]string, error)
	getByNameFn func(ctx context.Context, name string) (*models.WorkOrder, error)
}

func (m *mockWorkOrderService) ListNames(ctx context.Context) ([]string, error) {
	return m.listNamesFn(ctx)
}

func (m *mockWorkOrderService) GetByName(ctx context.Context, name string) (*models.WorkOrder, error) {
	return m.getByNameFn(ctx, name)
}

func TestWorkOrderHandler_Get(t *testing.T) {
	t.Run("without name returns the name list", func(t *testing.T) {
		h := NewWorkOrderHandler(&mockWorkOrderService{
			listNamesFn: func(context.Context) ([]string, error) {
				return []string{"Truck Roll", "Signal Check"}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/work-order", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp models.WorkOrderNamesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, []string{"Truck Roll", "Signal Check"}, resp.Names)
	})

	t.Run("with name returns the work order", func(t *testing.T) {
		noTruck := true

		h := NewWorkOrderHandler(&mockWorkOrderService{
			getByNameFn: func(_ context.Context, name string) (*models.WorkOrder, error) {
				assert.Equal(t, "Signal Check", name)

				return &models.WorkOrder{
					ID: 2, Title: "Signal Check", Description: "Verify levels at the tap",
					Metadata: &models.WorkOrderMetadata{NoTruck: &noTruck},
				}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/work-order?name=Signal+Check", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var wo models.WorkOrder
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wo))
		assert.Equal(t, int64(2), wo.ID)
		require.NotNil(t, wo.Metadata)
		require.NotNil(t, wo.Metadata.NoTruck)
		assert.True(t, *wo.Metadata.NoTruck)
	})

	t.Run("unknown name is 404", func(t *testing.T) {
		h := NewWorkOrderHandler(&mockWorkOrderService{
			getByNameFn: func(context.Context, string) (*models.WorkOrder, error) {
				return nil, apperrors.NewNotFoundError("work order", "")
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/work-order?name=Drone+Survey", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
