package mocks

import (
	"context"

	"scenario-server/internal/models"
	"scenario-server/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Ручные моки репозиториев в стиле testify/mock.

type ScenarioRepository struct {
	mock.Mock
}

func (m *ScenarioRepository) Create(ctx context.Context, q repository.DBTX, s *models.Scenario) error {
	args := m.Called(ctx, q, s)
	return args.Error(0)
}
func (m *ScenarioRepository) GetByID(ctx context.Context, q repository.DBTX, id uuid.UUID) (*models.Scenario, error) {
	args := m.Called(ctx, q, id)
	s, _ := args.Get(0).(*models.Scenario)
	return s, args.Error(1)
}
func (m *ScenarioRepository) ListByUserID(ctx context.Context, q repository.DBTX, userID uuid.UUID) ([]models.Scenario, error) {
	args := m.Called(ctx, q, userID)
	s, _ := args.Get(0).([]models.Scenario)
	return s, args.Error(1)
}
func (m *ScenarioRepository) Update(ctx context.Context, q repository.DBTX, s *models.Scenario) error {
	args := m.Called(ctx, q, s)
	return args.Error(0)
}
func (m *ScenarioRepository) Delete(ctx context.Context, q repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type RegionRepository struct {
	mock.Mock
}

func (m *RegionRepository) Create(ctx context.Context, q repository.DBTX, r *models.Region) error {
	args := m.Called(ctx, q, r)
	return args.Error(0)
}
func (m *RegionRepository) GetByID(ctx context.Context, q repository.DBTX, id uuid.UUID) (*models.Region, error) {
	args := m.Called(ctx, q, id)
	r, _ := args.Get(0).(*models.Region)
	return r, args.Error(1)
}
func (m *RegionRepository) ListByScenarioID(ctx context.Context, q repository.DBTX, scenarioID uuid.UUID) ([]models.Region, error) {
	args := m.Called(ctx, q, scenarioID)
	r, _ := args.Get(0).([]models.Region)
	return r, args.Error(1)
}
func (m *RegionRepository) CountByScenarioID(ctx context.Context, q repository.DBTX, scenarioID uuid.UUID) (int, error) {
	args := m.Called(ctx, q, scenarioID)
	return args.Int(0), args.Error(1)
}
func (m *RegionRepository) Update(ctx context.Context, q repository.DBTX, r *models.Region) error {
	args := m.Called(ctx, q, r)
	return args.Error(0)
}
func (m *RegionRepository) Delete(ctx context.Context, q repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type NPCRepository struct {
	mock.Mock
}

func (m *NPCRepository) Create(ctx context.Context, q repository.DBTX, n *models.ScenarioNPC) error {
	args := m.Called(ctx, q, n)
	return args.Error(0)
}
func (m *NPCRepository) GetByID(ctx context.Context, q repository.DBTX, id uuid.UUID) (*models.ScenarioNPC, error) {
	args := m.Called(ctx, q, id)
	n, _ := args.Get(0).(*models.ScenarioNPC)
	return n, args.Error(1)
}
func (m *NPCRepository) ListByScenarioID(ctx context.Context, q repository.DBTX, scenarioID uuid.UUID) ([]models.ScenarioNPC, error) {
	args := m.Called(ctx, q, scenarioID)
	n, _ := args.Get(0).([]models.ScenarioNPC)
	return n, args.Error(1)
}
func (m *NPCRepository) Update(ctx context.Context, q repository.DBTX, n *models.ScenarioNPC) error {
	args := m.Called(ctx, q, n)
	return args.Error(0)
}
func (m *NPCRepository) Delete(ctx context.Context, q repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type QuestRepository struct {
	mock.Mock
}

func (m *QuestRepository) Create(ctx context.Context, q repository.DBTX, quest *models.ScenarioQuest) error {
	args := m.Called(ctx, q, quest)
	return args.Error(0)
}
func (m *QuestRepository) GetByID(ctx context.Context, q repository.DBTX, id uuid.UUID) (*models.ScenarioQuest, error) {
	args := m.Called(ctx, q, id)
	quest, _ := args.Get(0).(*models.ScenarioQuest)
	return quest, args.Error(1)
}
func (m *QuestRepository) ListByScenarioID(ctx context.Context, q repository.DBTX, scenarioID uuid.UUID) ([]models.ScenarioQuest, error) {
	args := m.Called(ctx, q, scenarioID)
	quests, _ := args.Get(0).([]models.ScenarioQuest)
	return quests, args.Error(1)
}
func (m *QuestRepository) Update(ctx context.Context, q repository.DBTX, quest *models.ScenarioQuest) error {
	args := m.Called(ctx, q, quest)
	return args.Error(0)
}
func (m *QuestRepository) Delete(ctx context.Context, q repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type ConditionRepository struct {
	mock.Mock
}

func (m *ConditionRepository) Create(ctx context.Context, q repository.DBTX, c *models.EnvironmentalCondition) error {
	args := m.Called(ctx, q, c)
	return args.Error(0)
}
func (m *ConditionRepository) GetByID(ctx context.Context, q repository.DBTX, id uuid.UUID) (*models.EnvironmentalCondition, error) {
	args := m.Called(ctx, q, id)
	c, _ := args.Get(0).(*models.EnvironmentalCondition)
	return c, args.Error(1)
}
func (m *ConditionRepository) ListByScenarioID(ctx context.Context, q repository.DBTX, scenarioID uuid.UUID) ([]models.EnvironmentalCondition, error) {
	args := m.Called(ctx, q, scenarioID)
	c, _ := args.Get(0).([]models.EnvironmentalCondition)
	return c, args.Error(1)
}
func (m *ConditionRepository) Update(ctx context.Context, q repository.DBTX, c *models.EnvironmentalCondition) error {
	args := m.Called(ctx, q, c)
	return args.Error(0)
}
func (m *ConditionRepository) Delete(ctx context.Context, q repository.DBTX, id uuid.UUID) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

type CharacterRepository struct {
	mock.Mock
}

func (m *CharacterRepository) Create(ctx context.Context, c *models.PlayerCharacter) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *CharacterRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PlayerCharacter, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*models.PlayerCharacter)
	return c, args.Error(1)
}
func (m *CharacterRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PlayerCharacter, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).([]models.PlayerCharacter)
	return c, args.Error(1)
}
func (m *CharacterRepository) Update(ctx context.Context, c *models.PlayerCharacter) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *CharacterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Create(ctx context.Context, s *models.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*models.Session)
	return s, args.Error(1)
}
func (m *SessionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).([]models.Session)
	return s, args.Error(1)
}
func (m *SessionRepository) Update(ctx context.Context, s *models.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type SessionPlayerRepository struct {
	mock.Mock
}

func (m *SessionPlayerRepository) Create(ctx context.Context, p *models.SessionPlayer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *SessionPlayerRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SessionPlayer, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.SessionPlayer)
	return p, args.Error(1)
}
func (m *SessionPlayerRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.SessionPlayer, error) {
	args := m.Called(ctx, sessionID)
	p, _ := args.Get(0).([]models.SessionPlayer)
	return p, args.Error(1)
}
func (m *SessionPlayerRepository) Update(ctx context.Context, p *models.SessionPlayer) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *SessionPlayerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type TimelineRepository struct {
	mock.Mock
}

func (m *TimelineRepository) CreateEvent(ctx context.Context, e *models.TimelineEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *TimelineRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.TimelineEvent)
	return e, args.Error(1)
}
func (m *TimelineRepository) ListEventsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.TimelineEvent, error) {
	args := m.Called(ctx, sessionID)
	e, _ := args.Get(0).([]models.TimelineEvent)
	return e, args.Error(1)
}
func (m *TimelineRepository) UpdateEvent(ctx context.Context, e *models.TimelineEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *TimelineRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *TimelineRepository) CreateNode(ctx context.Context, n *models.Node) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *TimelineRepository) ListNodesBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Node, error) {
	args := m.Called(ctx, sessionID)
	n, _ := args.Get(0).([]models.Node)
	return n, args.Error(1)
}
func (m *TimelineRepository) DeleteNode(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *TimelineRepository) CreateConnection(ctx context.Context, c *models.Connection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *TimelineRepository) ListConnectionsBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.Connection, error) {
	args := m.Called(ctx, sessionID)
	c, _ := args.Get(0).([]models.Connection)
	return c, args.Error(1)
}
func (m *TimelineRepository) DeleteConnection(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
