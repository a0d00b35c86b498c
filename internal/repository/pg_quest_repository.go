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
	createQuestQuery = `
        INSERT INTO scenario_quests (scenario_id, title, description, status, priority, rewards, requirements)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	getQuestByIDQuery = `
        SELECT id, scenario_id, title, description, status, priority, rewards, requirements, created_at, updated_at
        FROM scenario_quests WHERE id = $1`
	listQuestsByScenarioQuery = `
        SELECT id, scenario_id, title, description, status, priority, rewards, requirements, created_at, updated_at
        FROM scenario_quests WHERE scenario_id = $1 ORDER BY created_at ASC`
	updateQuestQuery = `
        UPDATE scenario_quests
        SET title = $1, description = $2, status = $3, priority = $4, rewards = $5,
            requirements = $6, updated_at = CURRENT_TIMESTAMP
        WHERE id = $7
        RETURNING updated_at`
	deleteQuestQuery = `DELETE FROM scenario_quests WHERE id = $1`
)

var _ QuestRepository = (*pgQuestRepository)(nil)

type pgQuestRepository struct {
	logger *zap.Logger
}

func NewPgQuestRepository(logger *zap.Logger) QuestRepository {
	return &pgQuestRepository{logger: logger.Named("PgQuestRepo")}
}

func (r *pgQuestRepository) Create(ctx context.Context, q DBTX, quest *models.ScenarioQuest) error {
	err := q.QueryRow(ctx, createQuestQuery,
		quest.ScenarioID, quest.Title, quest.Description, quest.Status, quest.Priority, quest.Rewards, quest.Requirements,
	).Scan(&quest.ID, &quest.CreatedAt, &quest.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create quest", zap.Error(err), zap.String("scenarioID", quest.ScenarioID.String()))
		return fmt.Errorf("failed to create quest: %w", err)
	}
	return nil
}

func (r *pgQuestRepository) GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.ScenarioQuest, error) {
	var quest models.ScenarioQuest
	err := pgxscan.Get(ctx, q, &quest, getQuestByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrQuestNotFound
		}
		r.logger.Error("Failed to get quest", zap.Error(err), zap.String("questID", id.String()))
		return nil, fmt.Errorf("failed to get quest by id: %w", err)
	}
	return &quest, nil
}

func (r *pgQuestRepository) ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.ScenarioQuest, error) {
	quests := make([]models.ScenarioQuest, 0)
	err := pgxscan.Select(ctx, q, &quests, listQuestsByScenarioQuery, scenarioID)
	if err != nil {
		r.logger.Error("Failed to list quests", zap.Error(err), zap.String("scenarioID", scenarioID.String()))
		return nil, fmt.Errorf("failed to list quests: %w", err)
	}
	return quests, nil
}

func (r *pgQuestRepository) Update(ctx context.Context, q DBTX, quest *models.ScenarioQuest) error {
	err := q.QueryRow(ctx, updateQuestQuery,
		quest.Title, quest.Description, quest.Status, quest.Priority, quest.Rewards, quest.Requirements, quest.ID,
	).Scan(&quest.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrQuestNotFound
		}
		r.logger.Error("Failed to update quest", zap.Error(err), zap.String("questID", quest.ID.String()))
		return fmt.Errorf("failed to update quest: %w", err)
	}
	return nil
}

func (r *pgQuestRepository) Delete(ctx context.Context, q DBTX, id uuid.UUID) error {
	cmdTag, err := q.Exec(ctx, deleteQuestQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete quest", zap.Error(err), zap.String("questID", id.String()))
		return fmt.Errorf("failed to delete quest: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrQuestNotFound
	}
	return nil
}
