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
	createRegionQuery = `
        INSERT INTO regions (scenario_id, name, type, description, controlling_faction, population,
                             resources, threat_level, political_stance, trade_routes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, created_at, updated_at`
	getRegionByIDQuery = `
        SELECT id, scenario_id, name, type, description, controlling_faction, population,
               resources, threat_level, political_stance, trade_routes, created_at, updated_at
        FROM regions WHERE id = $1`
	listRegionsByScenarioQuery = `
        SELECT id, scenario_id, name, type, description, controlling_faction, population,
               resources, threat_level, political_stance, trade_routes, created_at, updated_at
        FROM regions WHERE scenario_id = $1 ORDER BY created_at ASC`
	countRegionsByScenarioQuery = `SELECT COUNT(*) FROM regions WHERE scenario_id = $1`
	updateRegionQuery           = `
        UPDATE regions
        SET name = $1, type = $2, description = $3, controlling_faction = $4, population = $5,
            resources = $6, threat_level = $7, political_stance = $8, trade_routes = $9,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $10
        RETURNING updated_at`
	deleteRegionQuery = `DELETE FROM regions WHERE id = $1`
)

var _ RegionRepository = (*pgRegionRepository)(nil)

type pgRegionRepository struct {
	logger *zap.Logger
}

// NewPgRegionRepository создает PostgreSQL-реализацию RegionRepository.
func NewPgRegionRepository(logger *zap.Logger) RegionRepository {
	return &pgRegionRepository{logger: logger.Named("PgRegionRepo")}
}

func (r *pgRegionRepository) Create(ctx context.Context, q DBTX, region *models.Region) error {
	err := q.QueryRow(ctx, createRegionQuery,
		region.ScenarioID, region.Name, region.Type, region.Description, region.ControllingFaction,
		region.Population, region.Resources, region.ThreatLevel, region.PoliticalStance, region.TradeRoutes,
	).Scan(&region.ID, &region.CreatedAt, &region.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create region", zap.Error(err), zap.String("scenarioID", region.ScenarioID.String()))
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

func (r *pgRegionRepository) GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.Region, error) {
	var region models.Region
	err := pgxscan.Get(ctx, q, &region, getRegionByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrRegionNotFound
		}
		r.logger.Error("Failed to get region", zap.Error(err), zap.String("regionID", id.String()))
		return nil, fmt.Errorf("failed to get region by id: %w", err)
	}
	return &region, nil
}

func (r *pgRegionRepository) ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.Region, error) {
	regions := make([]models.Region, 0)
	err := pgxscan.Select(ctx, q, &regions, listRegionsByScenarioQuery, scenarioID)
	if err != nil {
		r.logger.Error("Failed to list regions", zap.Error(err), zap.String("scenarioID", scenarioID.String()))
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

func (r *pgRegionRepository) CountByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) (int, error) {
	var count int
	err := q.QueryRow(ctx, countRegionsByScenarioQuery, scenarioID).Scan(&count)
	if err != nil {
		r.logger.Error("Failed to count regions", zap.Error(err), zap.String("scenarioID", scenarioID.String()))
		return 0, fmt.Errorf("failed to count regions: %w", err)
	}
	return count, nil
}

func (r *pgRegionRepository) Update(ctx context.Context, q DBTX, region *models.Region) error {
	err := q.QueryRow(ctx, updateRegionQuery,
		region.Name, region.Type, region.Description, region.ControllingFaction, region.Population,
		region.Resources, region.ThreatLevel, region.PoliticalStance, region.TradeRoutes, region.ID,
	).Scan(&region.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrRegionNotFound
		}
		r.logger.Error("Failed to update region", zap.Error(err), zap.String("regionID", region.ID.String()))
		return fmt.Errorf("failed to update region: %w", err)
	}
	return nil
}

func (r *pgRegionRepository) Delete(ctx context.Context, q DBTX, id uuid.UUID) error {
	cmdTag, err := q.Exec(ctx, deleteRegionQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete region", zap.Error(err), zap.String("regionID", id.String()))
		return fmt.Errorf("failed to delete region: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrRegionNotFound
	}
	return nil
}
