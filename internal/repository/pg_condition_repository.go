package repository

import (
	"context"
	"errors"
	"fmt"

	"scenario-server/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	createConditionQuery = `
        INSERT INTO environmental_conditions (scenario_id, name, description, severity, affected_regions, duration)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	getConditionByIDQuery = `
        SELECT id, scenario_id, name, description, severity, affected_regions, duration, created_at, updated_at
        FROM environmental_conditions WHERE id = $1`
	listConditionsByScenarioQuery = `
        SELECT id, scenario_id, name, description, severity, affected_regions, duration, created_at, updated_at
        FROM environmental_conditions WHERE scenario_id = $1 ORDER BY created_at ASC`
	updateConditionQuery = `
        UPDATE environmental_conditions
        SET name = $1, description = $2, severity = $3, affected_regions = $4, duration = $5,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $6
        RETURNING updated_at`
	deleteConditionQuery = `DELETE FROM environmental_conditions WHERE id = $1`
)

var _ ConditionRepository = (*pgConditionRepository)(nil)

type pgConditionRepository struct {
	logger *zap.Logger
}

func NewPgConditionRepository(logger *zap.Logger) ConditionRepository {
	return &pgConditionRepository{logger: logger.Named("PgConditionRepo")}
}

func (r *pgConditionRepository) Create(ctx context.Context, q DBTX, c *models.EnvironmentalCondition) error {
	err := q.QueryRow(ctx, createConditionQuery,
		c.ScenarioID, c.Name, c.Description, c.Severity, c.AffectedRegions, c.Duration,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create condition", zap.Error(err), zap.String("scenarioID", c.ScenarioID.String()))
		return fmt.Errorf("failed to create condition: %w", err)
	}
	return nil
}

func (r *pgConditionRepository) GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.EnvironmentalCondition, error) {
	var c models.EnvironmentalCondition
	err := pgxscan.Get(ctx, q, &c, getConditionByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrConditionNotFound
		}
		r.logger.Error("Failed to get condition", zap.Error(err), zap.String("conditionID", id.String()))
		return nil, fmt.Errorf("failed to get condition by id: %w", err)
	}
	return &c, nil
}

func (r *pgConditionRepository) ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.EnvironmentalCondition, error) {
	conditions := make([]models.EnvironmentalCondition, 0)
	err := pgxscan.Select(ctx, q, &conditions, listConditionsByScenarioQuery, scenarioID)
	if err != nil {
		r.logger.Error("Failed to list conditions", zap.Error(err), zap.String("scenarioID", scenarioID.String()))
		return nil, fmt.Errorf("failed to list conditions: %w", err)
	}
	return conditions, nil
}

func (r *pgConditionRepository) Update(ctx context.Context, q DBTX, c *models.EnvironmentalCondition) error {
	err := q.QueryRow(ctx, updateConditionQuery,
		c.Name, c.Description, c.Severity, c.AffectedRegions, c.Duration, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrConditionNotFound
		}
		r.logger.Error("Failed to update condition", zap.Error(err), zap.String("conditionID", c.ID.String()))
		return fmt.Errorf("failed to update condition: %w", err)
	}
	return nil
}

func (r *pgConditionRepository) Delete(ctx context.Context, q DBTX, id uuid.UUID) error {
	cmdTag, err := q.Exec(ctx, deleteConditionQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete condition", zap.Error(err), zap.String("conditionID", id.String()))
		return fmt.Errorf("failed to delete condition: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrConditionNotFound
	}
	return nil
}
