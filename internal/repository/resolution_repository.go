package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// ResolutionRepository handles data access for the resolutions table.
type ResolutionRepository struct {
	db *pgxpool.Pool
}

// NewResolutionRepository creates a new resolution repository.
func NewResolutionRepository(db *pgxpool.Pool) *ResolutionRepository {
	return &ResolutionRepository{db: db}
}

// GetByScenarioID returns the resolution attached to the given scenario, or
// apperrors.ErrNotFound when the scenario has none.
func (r *ResolutionRepository) GetByScenarioID(ctx context.Context, scenarioID int64) (*models.Resolution, error) {
	var (
		res      models.Resolution
		stepType string
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, scenario_id, steps, step_type
		FROM isp_support.resolutions
		WHERE scenario_id = $1`,
		scenarioID,
	).Scan(&res.ID, &res.ScenarioID, &res.Steps, &stepType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("resolution", "")
		}

		return nil, fmt.Errorf("get resolution by scenario id: %w", err)
	}

	parsed, err := models.ParseStepType(stepType)
	if err != nil {
		return nil, fmt.Errorf("get resolution by scenario id: %w", err)
	}

	res.StepType = parsed

	return &res, nil
}

// Insert stores the resolution for a scenario. Each scenario has at most one
// resolution (unique constraint on scenario_id).
func (r *ResolutionRepository) Insert(
	ctx context.Context, scenarioID int64, steps []string, stepType models.StepType,
) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx, `
		INSERT INTO isp_support.resolutions (scenario_id, steps, step_type)
		VALUES ($1, $2, $3)
		RETURNING id`,
		scenarioID, steps, string(stepType),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert resolution: %w", err)
	}

	return id, nil
}
