package service

import (
	"context"
	"log/slog"

	"github.com/ispsupport/hub/internal/linker"
	"github.com/ispsupport/hub/internal/models"
)

// ResolutionStore provides the read operation over stored resolutions.
type ResolutionStore interface {
	GetByScenarioID(ctx context.Context, scenarioID int64) (*models.Resolution, error)
}

// WorkOrderNamer supplies the ordered work-order name list for the linker.
type WorkOrderNamer interface {
	ListNames(ctx context.Context) ([]string, error)
}

// ResolutionService returns resolutions with their steps annotated against
// the known work-order names.
type ResolutionService struct {
	store  ResolutionStore
	names  WorkOrderNamer
	logger *slog.Logger
}

// NewResolutionService creates a ResolutionService. Logger may be nil.
func NewResolutionService(store ResolutionStore, names WorkOrderNamer, logger *slog.Logger) *ResolutionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ResolutionService{store: store, names: names, logger: logger}
}

// GetByScenarioID returns the scenario's resolution with annotated steps, or
// an error wrapping ErrNotFound when the scenario has none. When the
// work-order name list cannot be fetched, the steps are returned verbatim
// without annotations rather than failing the request.
func (s *ResolutionService) GetByScenarioID(ctx context.Context, scenarioID int64) (*models.ResolutionResponse, error) {
	res, err := s.store.GetByScenarioID(ctx, scenarioID)
	if err != nil {
		//nolint:wrapcheck // return as-is so handlers can map ErrNotFound to 404
		return nil, err
	}

	steps := make([]models.AnnotatedStep, len(res.Steps))
	for i, text := range res.Steps {
		steps[i] = models.AnnotatedStep{Text: text}
	}

	names, err := s.names.ListNames(ctx)
	if err != nil {
		s.logger.Warn("resolution: work order names unavailable, returning unannotated steps",
			"error", err, "scenario_id", scenarioID)

		return &models.ResolutionResponse{Resolution: *res, AnnotatedSteps: steps}, nil
	}

	annotations := linker.New(names).AnnotateSteps(res.Steps)
	for i, a := range annotations {
		if a == nil {
			continue
		}

		steps[i].Link = &models.StepLink{
			Prefix:            a.Prefix,
			LinkText:          a.LinkText,
			Suffix:            a.Suffix,
			HasCreationPrefix: a.HasCreationPrefix,
			CreationPrefix:    a.CreationPrefix,
		}
	}

	return &models.ResolutionResponse{Resolution: *res, AnnotatedSteps: steps}, nil
}
