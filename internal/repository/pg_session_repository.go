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
	createSessionQuery = `
        INSERT INTO sessions (user_id, name, creator_mode, current_phase, duration, ai_mode)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`
	getSessionByIDQuery = `
        SELECT id, user_id, name, creator_mode, current_phase, duration, ai_mode, created_at, updated_at
        FROM sessions WHERE id = $1`
	listSessionsByUserQuery = `
        SELECT id, user_id, name, creator_mode, current_phase, duration, ai_mode, created_at, updated_at
        FROM sessions WHERE user_id = $1 ORDER BY created_at DESC`
	updateSessionQuery = `
        UPDATE sessions
        SET name = $1, creator_mode = $2, current_phase = $3, duration = $4, ai_mode = $5,
            updated_at = CURRENT_TIMESTAMP
        WHERE id = $6
        RETURNING updated_at`
	deleteSessionQuery = `DELETE FROM sessions WHERE id = $1`
)

var _ SessionRepository = (*pgSessionRepository)(nil)

type pgSessionRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgSessionRepository(db DBTX, logger *zap.Logger) SessionRepository {
	return &pgSessionRepository{db: db, logger: logger.Named("PgSessionRepo")}
}

func (r *pgSessionRepository) Create(ctx context.Context, s *models.Session) error {
	err := r.db.QueryRow(ctx, createSessionQuery,
		s.UserID, s.Name, s.CreatorMode, s.CurrentPhase, s.Duration, s.AIMode,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create session", zap.Error(err), zap.String("userID", s.UserID.String()))
		return fmt.Errorf("failed to create session: %w", err)
	}
	r.logger.Info("Session created", zap.String("sessionID", s.ID.String()))
	return nil
}

func (r *pgSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	var s models.Session
	err := pgxscan.Get(ctx, r.db, &s, getSessionByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrSessionNotFound
		}
		r.logger.Error("Failed to get session", zap.Error(err), zap.String("sessionID", id.String()))
		return nil, fmt.Errorf("failed to get session by id: %w", err)
	}
	return &s, nil
}

func (r *pgSessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	sessions := make([]models.Session, 0)
	err := pgxscan.Select(ctx, r.db, &sessions, listSessionsByUserQuery, userID)
	if err != nil {
		r.logger.Error("Failed to list sessions", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (r *pgSessionRepository) Update(ctx context.Context, s *models.Session) error {
	err := r.db.QueryRow(ctx, updateSessionQuery,
		s.Name, s.CreatorMode, s.CurrentPhase, s.Duration, s.AIMode, s.ID,
	).Scan(&s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrSessionNotFound
		}
		r.logger.Error("Failed to update session", zap.Error(err), zap.String("sessionID", s.ID.String()))
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *pgSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteSessionQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete session", zap.Error(err), zap.String("sessionID", id.String()))
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}
