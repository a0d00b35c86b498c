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
	createEventQuery = `
        INSERT INTO timeline_events (session_id, title, description, kind, position)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	getEventByIDQuery = `
        SELECT id, session_id, title, description, kind, position, created_at, updated_at
        FROM timeline_events WHERE id = $1`
	listEventsBySessionQuery = `
        SELECT id, session_id, title, description, kind, position, created_at, updated_at
        FROM timeline_events WHERE session_id = $1 ORDER BY position ASC, created_at ASC`
	updateEventQuery = `
        UPDATE timeline_events
        SET title = $1, description = $2, kind = $3, position = $4, updated_at = CURRENT_TIMESTAMP
        WHERE id = $5
        RETURNING updated_at`
	deleteEventQuery = `DELETE FROM timeline_events WHERE id = $1`

	createNodeQuery = `
        INSERT INTO session_nodes (session_id, label, kind, x, y, data)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`
	listNodesBySessionQuery = `
        SELECT id, session_id, label, kind, x, y, data, created_at
        FROM session_nodes WHERE session_id = $1 ORDER BY created_at ASC`
	deleteNodeQuery = `DELETE FROM session_nodes WHERE id = $1`

	createConnectionQuery = `
        INSERT INTO session_connections (session_id, from_node, to_node, label)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`
	listConnectionsBySessionQuery = `
        SELECT id, session_id, from_node, to_node, label, created_at
        FROM session_connections WHERE session_id = $1 ORDER BY created_at ASC`
	deleteConnectionQuery = `DELETE FROM session_connections WHERE id = $1`
)

var _ TimelineRepository = (*pgTimelineRepository)(nil)

type pgTimelineRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgTimelineRepository создает репозиторий таймлайна и графа сессии.
func NewPgTimelineRepository(db DBTX, logger *zap.Logger) TimelineRepository {
	return &pgTimelineRepository{db: db, logger: logger.Named("PgTimelineRepo")}
}

func (r *pgTimelineRepository) CreateEvent(ctx context.Context, e *models.TimelineEvent) error {
	err := r.db.QueryRow(ctx, createEventQuery,
		e.SessionID, e.Title, e.Description, e.Kind, e.Position,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create timeline event", zap.Error(err), zap.String("sessionID", e.SessionID.String()))
		return fmt.Errorf("failed to create timeline event: %w", err)
	}
	return nil
}

func (r *pgTimelineRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error) {
	var e models.TimelineEvent
	err := pgxscan.Get(ctx, r.db, &e, getEventByIDQuery, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		r.logger.Error("Failed to get timeline event", zap.Error(err), zap.String("eventID", id.String()))
		return nil, fmt.Errorf("failed to get timeline event by id: %w", err)
	}
	return &e, nil
}

func (r *pgTimelineRepository) ListEventsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.TimelineEvent, error) {
	events := make([]models.TimelineEvent, 0)
	err := pgxscan.Select(ctx, r.db, &events, listEventsBySessionQuery, sessionID)
	if err != nil {
		r.logger.Error("Failed to list timeline events", zap.Error(err), zap.String("sessionID", sessionID.String()))
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}
	return events, nil
}

func (r *pgTimelineRepository) UpdateEvent(ctx context.Context, e *models.TimelineEvent) error {
	err := r.db.QueryRow(ctx, updateEventQuery,
		e.Title, e.Description, e.Kind, e.Position, e.ID,
	).Scan(&e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrEventNotFound
		}
		r.logger.Error("Failed to update timeline event", zap.Error(err), zap.String("eventID", e.ID.String()))
		return fmt.Errorf("failed to update timeline event: %w", err)
	}
	return nil
}

func (r *pgTimelineRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteEventQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete timeline event", zap.Error(err), zap.String("eventID", id.String()))
		return fmt.Errorf("failed to delete timeline event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrEventNotFound
	}
	return nil
}

func (r *pgTimelineRepository) CreateNode(ctx context.Context, n *models.Node) error {
	err := r.db.QueryRow(ctx, createNodeQuery,
		n.SessionID, n.Label, n.Kind, n.X, n.Y, n.Data,
	).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create node", zap.Error(err), zap.String("sessionID", n.SessionID.String()))
		return fmt.Errorf("failed to create node: %w", err)
	}
	return nil
}

func (r *pgTimelineRepository) ListNodesBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Node, error) {
	nodes := make([]models.Node, 0)
	err := pgxscan.Select(ctx, r.db, &nodes, listNodesBySessionQuery, sessionID)
	if err != nil {
		r.logger.Error("Failed to list nodes", zap.Error(err), zap.String("sessionID", sessionID.String()))
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	return nodes, nil
}

func (r *pgTimelineRepository) DeleteNode(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteNodeQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete node", zap.Error(err), zap.String("nodeID", id.String()))
		return fmt.Errorf("failed to delete node: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNodeNotFound
	}
	return nil
}

func (r *pgTimelineRepository) CreateConnection(ctx context.Context, c *models.Connection) error {
	err := r.db.QueryRow(ctx, createConnectionQuery,
		c.SessionID, c.FromNode, c.ToNode, c.Label,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create connection", zap.Error(err), zap.String("sessionID", c.SessionID.String()))
		return fmt.Errorf("failed to create connection: %w", err)
	}
	return nil
}

func (r *pgTimelineRepository) ListConnectionsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Connection, error) {
	connections := make([]models.Connection, 0)
	err := pgxscan.Select(ctx, r.db, &connections, listConnectionsBySessionQuery, sessionID)
	if err != nil {
		r.logger.Error("Failed to list connections", zap.Error(err), zap.String("sessionID", sessionID.String()))
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return connections, nil
}

func (r *pgTimelineRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, deleteConnectionQuery, id)
	if err != nil {
		r.logger.Error("Failed to delete connection", zap.Error(err), zap.String("connectionID", id.String()))
		return fmt.Errorf("failed to delete connection: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNodeNotFound
	}
	return nil
}
