package repository

import (
	"context"

	"scenario-server/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс для pgxpool.Pool и pgx.Tx, чтобы репозитории
// могли работать и внутри транзакции, и без нее.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner открывает транзакцию. Реализуется pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Репозитории дерева сценария принимают querier в каждом методе:
// каскадное удаление и bulk-импорт выполняют несколько операций
// в одной транзакции.

type ScenarioRepository interface {
	Create(ctx context.Context, q DBTX, s *models.Scenario) error
	GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.Scenario, error)
	ListByUserID(ctx context.Context, q DBTX, userID uuid.UUID) ([]models.Scenario, error)
	Update(ctx context.Context, q DBTX, s *models.Scenario) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type RegionRepository interface {
	Create(ctx context.Context, q DBTX, r *models.Region) error
	GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.Region, error)
	ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.Region, error)
	CountByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) (int, error)
	Update(ctx context.Context, q DBTX, r *models.Region) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type NPCRepository interface {
	Create(ctx context.Context, q DBTX, n *models.ScenarioNPC) error
	GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.ScenarioNPC, error)
	ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.ScenarioNPC, error)
	Update(ctx context.Context, q DBTX, n *models.ScenarioNPC) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type QuestRepository interface {
	Create(ctx context.Context, q DBTX, quest *models.ScenarioQuest) error
	GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.ScenarioQuest, error)
	ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.ScenarioQuest, error)
	Update(ctx context.Context, q DBTX, quest *models.ScenarioQuest) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

type ConditionRepository interface {
	Create(ctx context.Context, q DBTX, c *models.EnvironmentalCondition) error
	GetByID(ctx context.Context, q DBTX, id uuid.UUID) (*models.EnvironmentalCondition, error)
	ListByScenarioID(ctx context.Context, q DBTX, scenarioID uuid.UUID) ([]models.EnvironmentalCondition, error)
	Update(ctx context.Context, q DBTX, c *models.EnvironmentalCondition) error
	Delete(ctx context.Context, q DBTX, id uuid.UUID) error
}

// Остальные репозитории держат пул внутри: их операции не пересекают
// границы одной строки.

type CharacterRepository interface {
	Create(ctx context.Context, c *models.PlayerCharacter) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerCharacter, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlayerCharacter, error)
	Update(ctx context.Context, c *models.PlayerCharacter) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *models.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error)
	Update(ctx context.Context, s *models.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SessionPlayerRepository interface {
	Create(ctx context.Context, p *models.SessionPlayer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SessionPlayer, error)
	ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.SessionPlayer, error)
	Update(ctx context.Context, p *models.SessionPlayer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TimelineRepository interface {
	CreateEvent(ctx context.Context, e *models.TimelineEvent) error
	GetEventByID(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error)
	ListEventsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.TimelineEvent, error)
	UpdateEvent(ctx context.Context, e *models.TimelineEvent) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	CreateNode(ctx context.Context, n *models.Node) error
	ListNodesBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Node, error)
	DeleteNode(ctx context.Context, id uuid.UUID) error

	CreateConnection(ctx context.Context, c *models.Connection) error
	ListConnectionsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Connection, error)
	DeleteConnection(ctx context.Context, id uuid.UUID) error
}
