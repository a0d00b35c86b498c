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
	createSessionPlayerQuery = `
        INSERT INTO session_players (session_id, user_id, character_id, role, is_online)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, joined_at, last_active_at`
	getSessionPlayerByIDQuery = `
        SELECT id, session_id, user_id, character_id, role, is_online, joined_at, last_active_at
        FROM session_players WHERE id = $1`
	listSessionPlayersQuery = `
        SELECT id, session_id, user_id, character_id, role, is_online, joined_at, last_active_at
        FROM session_players WHERE session_id = $1 ORDER BY joined_at ASC`
	updateSessionPlayerQuery = `
        UPDATE session_players
        SET character_id = $1, role = $2, is_online = $3, last_active_at = CURRENT_TIMESTAMP
        WHERE id = $4
        RETURNING last_active_at`
	deleteSessionPlayerQuery = `DELETE FROM session_players WHERE id = $1`
)

var _ SessionPlayerRepository = (*pgSessionPlayerRepository)(nil)

type pgSessionPlayerRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgSessionPlayerRepository(db DBTX, logger *zap.Logger) SessionPlayerRepository {
	return &pgSessionPlayerRepository{db: db, logger: logger.Named("PgSessionPlayerRepo")}
}

func (r *pgSessionPlayerRepository) Create(ctx context.Context, p *models.SessionPlayer) error {
	err := r.db.QueryRow(ctx, createSessionPlayerQuery,
		p.SessionID, p.UserID, p.CharacterID, p.Role, p.IsOnline,
	).Scan(&p.ID, &p.JoinedAt, &p.LastActiveAt)
	if err != nil {
		r.logger.Error("Failed to create session player", zap.Error(err), zap.String("sessionID", p.SessionID.String()))
		return fmt.Errorf("failed to create session player: %w", err)
	}
	return nil
}

func (r *pgSessionPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SessionPlayer, error) {
	var p models.SessionPlayer
	err := pgxscan.Get(ctx, r.db, &p, getSessionPlayerByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPlayerNotFound
		}
		r.logger.Error("Failed to get session player", zap.Error(err), zap.String("playerID", id.String()))
		return nil, fmt.Errorf("failed to get session player by id: %w", err)
	}
	return &p, nil
}

func (r *pgSessionPlayerRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.SessionPlayer, error) {
	players := make([]models.SessionPlayer, 0)
	err := pgxscan.Select(ctx, r.db, &players, listSessionPlayersQuery, sessionID)
	if err != nil {
		r.logger.Error("Failed to list session players", zap.Error(err), zap.String("sessionID", sessionID.String()))
		return nil, fmt.Errorf("failed to list session players: %w", err)
	}
	return players, nil
}

func (r *pgSessionPlayerRepository) Update(ctx context.Context, p *models.SessionPlayer) error {
	err := r.db.QueryRow(ctx, updateSessionPlayerQuery,
		p.CharacterID, p.Role, p.IsOnline, p.ID,
	).Scan(&p.LastActiveAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrPlayerNotFound
		}
		r.logger.Error("Failed to update session player", zap.Error(err), zap.String("playerID", p.ID.String()))
		return fmt.Errorf("failed to update session player: %w", err)
	}
	return nil
}

func (r *pgSessionPlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteSessionPlayerQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete session player", zap.Error(err), zap.String("playerID", id.String()))
		return fmt.Errorf("failed to delete session player: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrPlayerNotFound
	}
	return nil
}
