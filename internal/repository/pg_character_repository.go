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
	createCharacterQuery = `
        INSERT INTO player_characters (user_id, session_id, name, class, level, background,
                                       stats, skills, equipment, notes, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, created_at, updated_at`
	getCharacterByIDQuery = `
        SELECT id, user_id, session_id, name, class, level, background, stats, skills, equipment,
               notes, is_active, created_at, updated_at
        FROM player_characters WHERE id = $1`
	listCharactersByUserQuery = `
        SELECT id, user_id, session_id, name, class, level, background, stats, skills, equipment,
               notes, is_active, created_at, updated_at
        FROM player_characters WHERE user_id = $1 ORDER BY created_at DESC`
	updateCharacterQuery = `
        UPDATE player_characters
        SET name = $1, class = $2, level = $3, background = $4, stats = $5, skills = $6,
            equipment = $7, notes = $8, is_active = $9, session_id = $10, updated_at = CURRENT_TIMESTAMP
        WHERE id = $11
        RETURNING updated_at`
	deleteCharacterQuery = `DELETE FROM player_characters WHERE id = $1`
)

var _ CharacterRepository = (*pgCharacterRepository)(nil)

type pgCharacterRepository struct {
	db     DBTX
	logger *zap.Logger
}

func NewPgCharacterRepository(db DBTX, logger *zap.Logger) CharacterRepository {
	return &pgCharacterRepository{db: db, logger: logger.Named("PgCharacterRepo")}
}

func (r *pgCharacterRepository) Create(ctx context.Context, c *models.PlayerCharacter) error {
	err := r.db.QueryRow(ctx, createCharacterQuery,
		c.UserID, c.SessionID, c.Name, c.Class, c.Level, c.Background,
		c.Stats, c.Skills, c.Equipment, c.Notes, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create character", zap.Error(err), zap.String("userID", c.UserID.String()))
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

func (r *pgCharacterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerCharacter, error) {
	var c models.PlayerCharacter
	err := pgxscan.Get(ctx, r.db, &c, getCharacterByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCharacterNotFound
		}
		r.logger.Error("Failed to get character", zap.Error(err), zap.String("characterID", id.String()))
		return nil, fmt.Errorf("failed to get character by id: %w", err)
	}
	return &c, nil
}

func (r *pgCharacterRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlayerCharacter, error) {
	characters := make([]models.PlayerCharacter, 0)
	err := pgxscan.Select(ctx, r.db, &characters, listCharactersByUserQuery, userID)
	if err != nil {
		r.logger.Error("Failed to list characters", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}

func (r *pgCharacterRepository) Update(ctx context.Context, c *models.PlayerCharacter) error {
	err := r.db.QueryRow(ctx, updateCharacterQuery,
		c.Name, c.Class, c.Level, c.Background, c.Stats, c.Skills,
		c.Equipment, c.Notes, c.IsActive, c.SessionID, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrCharacterNotFound
		}
		r.logger.Error("Failed to update character", zap.Error(err), zap.String("characterID", c.ID.String()))
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

func (r *pgCharacterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteCharacterQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete character", zap.Error(err), zap.String("characterID", id.String()))
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrCharacterNotFound
	}
	return nil
}
