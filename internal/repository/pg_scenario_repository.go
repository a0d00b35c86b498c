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
	createScenarioQuery = `
        INSERT INTO scenarios (user_id, title, main_idea, world_context, political_situation, key_themes, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`
	getScenarioByIDQuery = `
        SELECT id, user_id, title, main_idea, world_context, political_situation, key_themes, status, created_at, updated_at
        FROM scenarios WHERE id = $1`
	listScenariosByUserQuery = `
        SELECT id, user_id, title, main_idea, world_context, political_situation, key_themes, status, created_at, updated_at
        FROM scenarios WHERE user_id = $1 ORDER BY created_at DESC`
	updateScenarioQuery = `
        UPDATE scenarios
        SET title = $1, main_idea = $2, world_context = $3, political_situation = $4,
            key_themes = $5, status = $6, updated_at = CURRENT_TIMESTAMP
        WHERE id = $7
        RETURNING updated_at`
	deleteScenarioQuery = `DELETE FROM scenarios WHERE id = $1`
)

// Compile-time check
var _ ScenarioRepository = (*pgScenarioRepository)(nil)

type pgScenarioRepository struct {
	logger *zap.Logger
}

// NewPgScenarioRepository создает PostgreSQL-реализацию ScenarioRepository.
func NewPgScenarioRepository(logger *zap.Logger) ScenarioRepository {
	return &pgScenarioRepository{logger: logger.Named("PgScenarioRepo")}
}

// Create вставляет новый сценарий и заполняет серверные поля (id, timestamps).
func (r *pgScenarioRepository) Create(ctx context.Context, q DBTX, s *models.Scenario) error {
	err := q.QueryRow(ctx, createScenarioQuery,
		s.UserID, s.Title, s.MainIdea, s.WorldContext, s.PoliticalSituation, s.KeyThemes, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create scenario", zap.Error(err), zap.String("userID", s.UserID.String()))
		return fmt.Errorf("failed to create scenario: %w", err)
	}
	r.logger.Info("Scenario created", zap.String("scenarioID", s.ID.String()), zap.String("userID", s.UserID.String()))
	return nil
}

func (r *pgScenarioRepository) GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.Scenario, error) {
	var s models.Scenario
	err := pgxscan.Get(ctx, q, &s, getScenarioByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug("Scenario not found", zap.String("scenarioID", id.String()))
			return nil, models.ErrScenarioNotFound
		}
		r.logger.Error("Failed to get scenario", zap.Error(err), zap.String("scenarioID", id.String()))
		return nil, fmt.Errorf("failed to get scenario by id: %w", err)
	}
	return &s, nil
}

func (r *pgScenarioRepository) ListByUserID(ctx context.Context, q DBTX, userID uuid.UUID) ([]models.Scenario, error) {
	scenarios := make([]models.Scenario, 0)
	err := pgxscan.Select(ctx, q, &scenarios, listScenariosByUserQuery, userID)
	if err != nil {
		r.logger.Error("Failed to list scenarios", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	return scenarios, nil
}

// Update перезаписывает изменяемые поля сценария. Мерж частичного payload
// делает сервисный слой.
func (r *pgScenarioRepository) Update(ctx context.Context, q DBTX, s *models.Scenario) error {
	err := q.QueryRow(ctx, updateScenarioQuery,
		s.Title, s.MainIdea, s.WorldContext, s.PoliticalSituation, s.KeyThemes, s.Status, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrScenarioNotFound
		}
		r.logger.Error("Failed to update scenario", zap.Error(err), zap.String("scenarioID", s.ID.String()))
		return fmt.Errorf("failed to update scenario: %w", err)
	}
	return nil
}

// Delete удаляет сценарий. Дочерние строки уходят по FK ON DELETE CASCADE,
// но сервис все равно оборачивает вызов в транзакцию вместе с проверкой владельца.
func (r *pgScenarioRepository) Delete(ctx context.Context, q DBTX, id uuid.UUID) error {
	cmdTag, err := q.Exec(ctx, deleteScenarioQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete scenario", zap.Error(err), zap.String("scenarioID", id.String()))
		return fmt.Errorf("failed to delete scenario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrScenarioNotFound
	}
	r.logger.Info("Scenario deleted", zap.String("scenarioID", id.String()))
	return nil
}
