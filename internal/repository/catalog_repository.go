// Package repository contains the data access layer over PostgreSQL/pgvector.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	apperrors "github.com/ispsupport/hub/internal/errors"
	"github.com/ispsupport/hub/internal/models"
)

// CatalogRepository handles data access for the scenarios and work_orders tables.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FindNearest returns up to limit catalog entries of the given kind ordered by
// ascending cosine distance to queryVector. Rows without a stored embedding
// are excluded; ties at equal distance break by id ascending so output is
// deterministic across calls and backends.
func (r *CatalogRepository) FindNearest(
	ctx context.Context, kind models.EntityKind, queryVector []float32, limit int,
) ([]models.Candidate, error) {
	queryVec := pgvector.NewVector(queryVector)

	var (
		rows pgx.Rows
		err  error
	)

	switch kind {
	case models.KindScenario:
		rows, err = r.db.Query(ctx, `
			SELECT id, title, description, (embedding <=> $1) AS distance
			FROM isp_support.scenarios
			WHERE embedding IS NOT NULL
			ORDER BY embedding <=> $1, id
			LIMIT $2`, queryVec, limit)
	case models.KindWorkOrder:
		rows, err = r.db.Query(ctx, `
			SELECT id, title, description, metadata, (embedding <=> $1) AS distance
			FROM isp_support.work_orders
			WHERE embedding IS NOT NULL
			ORDER BY embedding <=> $1, id
			LIMIT $2`, queryVec, limit)
	default:
		return nil, fmt.Errorf("find nearest: unsupported kind %q", kind)
	}

	if err != nil {
		return nil, fmt.Errorf("find nearest %s: %w", kind, err)
	}

	defer rows.Close()

	var candidates []models.Candidate

	for rows.Next() {
		c := models.Candidate{Kind: kind}

		if kind == models.KindWorkOrder {
			var metadata []byte

			if err := rows.Scan(&c.ID, &c.Title, &c.Description, &metadata, &c.Distance); err != nil {
				return nil, fmt.Errorf("scan work order candidate: %w", err)
			}

			if len(metadata) > 0 {
				c.Metadata = &models.WorkOrderMetadata{}
				if err := json.Unmarshal(metadata, c.Metadata); err != nil {
					return nil, fmt.Errorf("decode work order metadata: %w", err)
				}
			}
		} else {
			if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Distance); err != nil {
				return nil, fmt.Errorf("scan scenario candidate: %w", err)
			}
		}

		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nearest: %w", err)
	}

	return candidates, nil
}

// InsertScenario inserts a scenario with its embedding and returns the new id.
func (r *CatalogRepository) InsertScenario(
	ctx context.Context, title, description string, embedding []float32,
) (int64, error) {
	var id int64

	err := r.db.QueryRow(ctx, `
		INSERT INTO isp_support.scenarios (title, description, embedding)
		VALUES ($1, $2, $3)
		RETURNING id`,
		title, description, pgvector.NewVector(embedding),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert scenario: %w", err)
	}

	return id, nil
}

// InsertWorkOrder inserts a work order template with its embedding and
// optional metadata and returns the new id.
func (r *CatalogRepository) InsertWorkOrder(
	ctx context.Context, title, description string, metadata *models.WorkOrderMetadata, embedding []float32,
) (int64, error) {
	var metadataJSON []byte

	if metadata != nil {
		var err error

		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return 0, fmt.Errorf("encode work order metadata: %w", err)
		}
	}

	var id int64

	err := r.db.QueryRow(ctx, `
		INSERT INTO isp_support.work_orders (title, description, metadata, embedding)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		title, description, metadataJSON, pgvector.NewVector(embedding),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert work order: %w", err)
	}

	return id, nil
}

// ListWorkOrderNames returns all work order titles in catalog listing order
// (id ascending). The linker relies on this order for match precedence.
func (r *CatalogRepository) ListWorkOrderNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT title FROM isp_support.work_orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list work order names: %w", err)
	}

	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan work order name: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work order names: %w", err)
	}

	return names, nil
}

// GetWorkOrderByName returns the work order with the given title, or
// apperrors.ErrNotFound when none exists.
func (r *CatalogRepository) GetWorkOrderByName(ctx context.Context, name string) (*models.WorkOrder, error) {
	var (
		wo       models.WorkOrder
		metadata []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, metadata
		FROM isp_support.work_orders
		WHERE title = $1`,
		name,
	).Scan(&wo.ID, &wo.Title, &wo.Description, &metadata)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("work order", "")
		}

		return nil, fmt.Errorf("get work order by name: %w", err)
	}

	if len(metadata) > 0 {
		wo.Metadata = &models.WorkOrderMetadata{}
		if err := json.Unmarshal(metadata, wo.Metadata); err != nil {
			return nil, fmt.Errorf("decode work order metadata: %w", err)
		}
	}

	return &wo, nil
}
