package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

type mockWorkOrderStore struct {
	listNamesFn func(ctx context.Context) ([]string, error)
	getByNameFn func(ctx context.Context, name string) (*models.WorkOrder, error)
}

func (m *mockWorkOrderStore) ListWorkOrderNames(ctx context.Context) ([]string, error) {
	return m.listNamesFn(ctx)
}

func (m *mockWorkOrderStore) GetWorkOrderByName(ctx context.Context, name string) (*models.WorkOrder, error) {
	return m.getByNameFn(ctx, name)
}

func TestWorkOrderService_ListNamesCached(t *testing.T) {
	var calls atomic.Int32

	svc, err := NewWorkOrderService(&mockWorkOrderStore{
		listNamesFn: func(context.Context) ([]string, error) {
			calls.Add(1)

			return []string{"Truck Roll", "Signal Check"}, nil
		},
	}, nil, nil)
	require.NoError(t, err)

	for range 3 {
		names, err := svc.ListNames(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"Truck Roll", "Signal Check"}, names)
	}

	assert.Equal(t, int32(1), calls.Load())
}

func TestWorkOrderService_InvalidateNames(t *testing.T) {
	var calls atomic.Int32

	svc, err := NewWorkOrderService(&mockWorkOrderStore{
		listNamesFn: func(context.Context) ([]string, error) {
			calls.Add(1)

			return []string{"Truck Roll"}, nil
		},
	}, nil, nil)
	require.NoError(t, err)

	_, err = svc.ListNames(context.Background())
	require.NoError(t, err)

	svc.InvalidateNames()

	_, err = svc.ListNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestWorkOrderService_GetByName(t *testing.T) {
	svc, err := NewWorkOrderService(&mockWorkOrderStore{
		getByNameFn: func(_ context.Context, name string) (*models.WorkOrder, error) {
			if name != "Truck Roll" {
				return nil, apperrors.NewNotFoundError("work order", "")
			}

			return &models.WorkOrder{ID: 1, Title: "Truck Roll"}, nil
		},
	}, nil, nil)
	require.NoError(t, err)

	wo, err := svc.GetByName(context.Background(), "Truck Roll")
	require.NoError(t, err)
	assert.Equal(t, int64(1), wo.ID)

	_, err = svc.GetByName(context.Background(), "Drone Survey")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
