package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ispsupport/hub/internal/models"
	"github.com/ispsupport/hub/internal/observability"
	"github.com/ispsupport/hub/pkg/cache"
)

const workOrderNamesCacheName = "work_order_names"

// WorkOrderStore provides the read operations over the work-order catalog.
type WorkOrderStore interface {
	ListWorkOrderNames(ctx context.Context) ([]string, error)
	GetWorkOrderByName(ctx context.Context, name string) (*models.WorkOrder, error)
}

// WorkOrderService exposes work-order lookups. The name list changes only at
// seed time, so it is cached; the single-entry loader cache also coalesces
// concurrent loads.
type WorkOrderService struct {
	store      WorkOrderStore
	namesCache *cache.LoaderCache[string, []string]
	metrics    observability.Recorder
	logger     *slog.Logger
}

// NewWorkOrderService creates a WorkOrderService. Metrics may be nil.
func NewWorkOrderService(
	store WorkOrderStore, metrics observability.Recorder, logger *slog.Logger,
) (*WorkOrderService, error) {
	namesCache, err := cache.NewLoaderCache[string, []string](1, func(k string) string { return k })
	if err != nil {
		return nil, fmt.Errorf("create names cache: %w", err)
	}

	if metrics == nil {
		metrics = observability.NoopRecorder{}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WorkOrderService{
		store:      store,
		namesCache: namesCache,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// ListNames returns all work order titles in catalog listing order. The order
// feeds the resolution linker's match precedence.
func (s *WorkOrderService) ListNames(ctx context.Context) ([]string, error) {
	names, hit, err := s.namesCache.GetWithStats(ctx, workOrderNamesCacheName,
		func(ctx context.Context, _ string) ([]string, error) {
			return s.store.ListWorkOrderNames(ctx)
		})

	s.metrics.IncCache(workOrderNamesCacheName, hit)

	if err != nil {
		return nil, fmt.Errorf("list work order names: %w", err)
	}

	return names, nil
}

// GetByName returns the work order with the given title, or an error wrapping
// ErrNotFound when none exists.
func (s *WorkOrderService) GetByName(ctx context.Context, name string) (*models.WorkOrder, error) {
	wo, err := s.store.GetWorkOrderByName(ctx, name)
	if err != nil {
		//nolint:wrapcheck // return as-is so handlers can map ErrNotFound to 404
		return nil, err
	}

	return wo, nil
}

// InvalidateNames clears the cached name list (used after seeding).
func (s *WorkOrderService) InvalidateNames() {
	s.namesCache.InvalidateAll()
}
