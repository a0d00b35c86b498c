package service

import (
	"context"
	"encoding/json"
	"fmt"

	"scenario-server/internal/cache"
	"scenario-server/internal/models"
	"scenario-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScenarioService владеет деревом контента сценария: сам сценарий и его
// регионы, NPC, квесты и условия окружения. Все операции скоупятся
// владельцем: чужой сценарий неотличим от несуществующего.
type ScenarioService struct {
	scenarioRepo  repository.ScenarioRepository
	regionRepo    repository.RegionRepository
	npcRepo       repository.NPCRepository
	questRepo     repository.QuestRepository
	conditionRepo repository.ConditionRepository
	db            repository.DBTX
	listCache     *cache.ListCache
	logger        *zap.Logger
}

func NewScenarioService(
	scenarioRepo repository.ScenarioRepository,
	regionRepo repository.RegionRepository,
	npcRepo repository.NPCRepository,
	questRepo repository.QuestRepository,
	conditionRepo repository.ConditionRepository,
	db repository.DBTX,
	listCache *cache.ListCache,
	logger *zap.Logger,
) *ScenarioService {
	return &ScenarioService{
		scenarioRepo:  scenarioRepo,
		regionRepo:    regionRepo,
		npcRepo:       npcRepo,
		questRepo:     questRepo,
		conditionRepo: conditionRepo,
		db:            db,
		listCache:     listCache,
		logger:        logger.Named("ScenarioService"),
	}
}

func scenariosCacheKey(userID uuid.UUID) string {
	return "scenarios:user:" + userID.String()
}

func regionsCacheKey(scenarioID uuid.UUID) string {
	return "regions:scenario:" + scenarioID.String()
}

// getOwnedScenario возвращает сценарий, только если он принадлежит userID.
func (s *ScenarioService) getOwnedScenario(ctx context.Context, userID, scenarioID uuid.UUID) (*models.Scenario, error) {
	scenario, err := s.scenarioRepo.GetByID(ctx, s.db, scenarioID)
	if err != nil {
		return nil, err
	}
	if scenario.UserID != userID {
		// Не раскрываем существование чужих сценариев
		return nil, models.ErrScenarioNotFound
	}
	return scenario, nil
}

// CreateScenario валидирует payload, создает сценарий и сразу засеивает
// дефолтные регионы, чтобы новый сценарий не был пустым.
func (s *ScenarioService) CreateScenario(ctx context.Context, userID uuid.UUID, scenario *models.Scenario) error {
	scenario.UserID = userID
	if scenario.Status == "" {
		scenario.Status = models.ScenarioStatusDraft
	}
	if err := validateScenario(scenario); err != nil {
		return err
	}
	if err := s.scenarioRepo.Create(ctx, s.db, scenario); err != nil {
		return err
	}
	if _, err := s.seedRegions(ctx, scenario.ID); err != nil {
		// Сценарий уже создан; сидинг можно повторить явным вызовом seed-defaults
		s.logger.Warn("Default region seeding failed after scenario create",
			zap.Error(err), zap.String("scenarioID", scenario.ID.String()))
	}
	s.listCache.Invalidate(ctx, scenariosCacheKey(userID))
	return nil
}

func (s *ScenarioService) GetScenario(ctx context.Context, userID, scenarioID uuid.UUID) (*models.Scenario, error) {
	return s.getOwnedScenario(ctx, userID, scenarioID)
}

func (s *ScenarioService) ListScenarios(ctx context.Context, userID uuid.UUID) ([]models.Scenario, error) {
	key := scenariosCacheKey(userID)
	if data, ok := s.listCache.Get(ctx, key); ok {
		var cached []models.Scenario
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Битую запись просто выбрасываем
		s.listCache.Invalidate(ctx, key)
	}
	scenarios, err := s.scenarioRepo.ListByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(scenarios); err == nil {
		s.listCache.Set(ctx, key, data)
	}
	return scenarios, nil
}

// UpdateScenario применяет частичное обновление: затрагиваются только
// переданные поля, остальные остаются как были.
func (s *ScenarioService) UpdateScenario(ctx context.Context, userID, scenarioID uuid.UUID, upd models.ScenarioUpdate) (*models.Scenario, error) {
	scenario, err := s.getOwnedScenario(ctx, userID, scenarioID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		scenario.Title = *upd.Title
	}
	if upd.MainIdea != nil {
		scenario.MainIdea = *upd.MainIdea
	}
	if upd.WorldContext != nil {
		scenario.WorldContext = *upd.WorldContext
	}
	if upd.PoliticalSituation != nil {
		scenario.PoliticalSituation = *upd.PoliticalSituation
	}
	if upd.KeyThemes != nil {
		scenario.KeyThemes = *upd.KeyThemes
	}
	if upd.Status != nil {
		scenario.Status = *upd.Status
	}
	if err := validateScenario(scenario); err != nil {
		return nil, err
	}
	if err := s.scenarioRepo.Update(ctx, s.db, scenario); err != nil {
		return nil, err
	}
	s.listCache.Invalidate(ctx, scenariosCacheKey(userID))
	return scenario, nil
}

// DeleteScenario удаляет сценарий вместе с дочерними сущностями.
// Каскад выполняется на стороне БД одним стейтментом (FK ON DELETE CASCADE),
// так что частично удаленного дерева не бывает.
func (s *ScenarioService) DeleteScenario(ctx context.Context, userID, scenarioID uuid.UUID) error {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return err
	}
	if err := s.scenarioRepo.Delete(ctx, s.db, scenarioID); err != nil {
		return err
	}
	s.listCache.Invalidate(ctx, scenariosCacheKey(userID), regionsCacheKey(scenarioID))
	return nil
}

// SeedDefaultRegions - явный идемпотентный сидинг: регионы создаются, только
// если у сценария их еще нет; иначе возвращается существующий набор.
// GET /regions никогда не пишет - сидинг вынесен в отдельную операцию.
func (s *ScenarioService) SeedDefaultRegions(ctx context.Context, userID, scenarioID uuid.UUID) ([]models.Region, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	count, err := s.regionRepo.CountByScenarioID(ctx, s.db, scenarioID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return s.regionRepo.ListByScenarioID(ctx, s.db, scenarioID)
	}
	return s.seedRegions(ctx, scenarioID)
}

func (s *ScenarioService) seedRegions(ctx context.Context, scenarioID uuid.UUID) ([]models.Region, error) {
	defaults := defaultRegions()
	created := make([]models.Region, 0, len(defaults))
	for i := range defaults {
		region := defaults[i]
		region.ScenarioID = scenarioID
		if err := s.regionRepo.Create(ctx, s.db, &region); err != nil {
			return nil, fmt.Errorf("failed to seed default region %q: %w", region.Name, err)
		}
		created = append(created, region)
	}
	s.listCache.Invalidate(ctx, regionsCacheKey(scenarioID))
	s.logger.Info("Default regions seeded", zap.String("scenarioID", scenarioID.String()), zap.Int("count", len(created)))
	return created, nil
}
