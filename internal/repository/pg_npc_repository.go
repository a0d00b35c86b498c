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
	createNPCQuery = `
        INSERT INTO scenario_npcs (scenario_id, name, role, description, location, faction, importance, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`
	getNPCByIDQuery = `
        SELECT id, scenario_id, name, role, description, location, faction, importance, status, created_at, updated_at
        FROM scenario_npcs WHERE id = $1`
	listNPCsByScenarioQuery = `
        SELECT id, scenario_id, name, role, description, location, faction, importance, status, created_at, updated_at
        FROM scenario_npcs WHERE scenario_id = $1 ORDER BY created_at ASC`
	updateNPCQuery = `
        UPDATE scenario_npcs
        SET name = $1, role = $2, description = $3, location = $4, faction = $5,
            importance = $6, status = $7, updated_at = CURRENT_TIMESTAMP
        WHERE id = $8
        RETURNING updated_at`
	deleteNPCQuery = `DELETE FROM scenario_npcs WHERE id = $1`
)

var _ NPCRepository = (*pgNPCRepository)(nil)

type pgNPCRepository struct {
	logger *zap.Logger
}

func NewPgNPCRepository(logger *zap.Logger) NPCRepository {
	return &pgNPCRepository{logger: logger.Named("PgNPCRepo")}
}

func (r *pgNPCRepository) Create(ctx context.Context, q DBTX, n *models.ScenarioNPC) error {
	err := q.QueryRow(ctx, createNPCQuery,
		n.ScenarioID, n.Name, n.Role, n.Description, n.Location, n.Faction, n.Importance, n.Status,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create npc", zap.Error(err), zap.String("scenarioID", n.ScenarioID.String()))
		return fmt.Errorf("failed to create npc: %w", err)
	}
	return nil
}

func (r *pgNPCRepository) GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.ScenarioNPC, error) {
	var n models.ScenarioNPC
	err := pgxscan.Get(ctx, q, &n, getNPCByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNPCNotFound
		}
		r.logger.Error("Failed to get npc", zap.Error(err), zap.String("npcID", id.String()))
		return nil, fmt.Errorf("failed to get npc by id: %w", err)
	}
	return &n, nil
}

func (r *pgNPCRepository) ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.ScenarioNPC, error) {
	npcs := make([]models.ScenarioNPC, 0)
	err := pgxscan.Select(ctx, q, &npcs, listNPCsByScenarioQuery, scenarioID)
	if err != nil {
		r.logger.Error("Failed to list npcs", zap.Error(err), zap.String("scenarioID", scenarioID.String()))
		return nil, fmt.Errorf("failed to list npcs: %w", err)
	}
	return npcs, nil
}

func (r *pgNPCRepository) Update(ctx context.Context, q DBTX, n *models.ScenarioNPC) error {
	err := q.QueryRow(ctx, updateNPCQuery,
		n.Name, n.Role, n.Description, n.Location, n.Faction, n.Importance, n.Status, n.ID,
	).Scan(&n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrNPCNotFound
		}
		r.logger.Error("Failed to update npc", zap.Error(err), zap.String("npcID", n.ID.String()))
		return fmt.Errorf("failed to update npc: %w", err)
	}
	return nil
}

func (r *pgNPCRepository) Delete(ctx context.Context, q DBTX, id uuid.UUID) error {
	cmdTag, err := q.Exec(ctx, deleteNPCQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete npc", zap.Error(err), zap.String("npcID", id.String()))
		return fmt.Errorf("failed to delete npc: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNPCNotFound
	}
	return nil
}
