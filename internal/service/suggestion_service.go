package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"scenario-server/internal/models"
	"scenario-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AIClient - генератор текстовых подсказок. Реализация - OpenRouter клиент
// из internal/ai, в тестах подменяется моком.
type AIClient interface {
	Suggest(ctx context.Context, target, prompt, scenarioContext string) (string, error)
	Model() string
}

// SuggestionService собирает контекст сценария и запрашивает у AI текст
// под конкретное поле. Результат не персистится.
type SuggestionService struct {
	ai           AIClient
	scenarioRepo repository.ScenarioRepository
	regionRepo   repository.RegionRepository
	db           repository.DBTX
	logger       *zap.Logger
}

func NewSuggestionService(
	ai AIClient,
	scenarioRepo repository.ScenarioRepository,
	regionRepo repository.RegionRepository,
	db repository.DBTX,
	logger *zap.Logger,
) *SuggestionService {
	return &SuggestionService{
		ai:           ai,
		scenarioRepo: scenarioRepo,
		regionRepo:   regionRepo,
		db:           db,
		logger:       logger.Named("SuggestionService"),
	}
}

func (s *SuggestionService) Suggest(ctx context.Context, userID uuid.UUID, req models.SuggestionRequest) (*models.Suggestion, error) {
	if strings.TrimSpace(req.Target) == "" {
		return nil, &models.ValidationError{Fields: []models.FieldError{{Field: "target", Message: "is required"}}}
	}

	scenarioContext := ""
	if req.ScenarioID != nil {
		var err error
		scenarioContext, err = s.buildScenarioContext(ctx, userID, *req.ScenarioID)
		if err != nil {
			return nil, err
		}
	}

	text, err := s.ai.Suggest(ctx, req.Target, req.Prompt, scenarioContext)
	if err != nil {
		s.logger.Error("Suggestion generation failed", zap.Error(err), zap.String("target", req.Target))
		return nil, errors.Join(models.ErrSuggestionFailed, err)
	}

	return &models.Suggestion{
		Target: req.Target,
		Text:   text,
		Model:  s.ai.Model(),
	}, nil
}

// buildScenarioContext собирает текстовую выжимку сценария для промпта:
// основные поля плюс список регионов. Доступ скоупится владельцем.
func (s *SuggestionService) buildScenarioContext(ctx context.Context, userID, scenarioID uuid.UUID) (string, error) {
	scenario, err := s.scenarioRepo.GetByID(ctx, s.db, scenarioID)
	if err != nil {
		return "", err
	}
	if scenario.UserID != userID {
		return "", models.ErrScenarioNotFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", scenario.Title)
	fmt.Fprintf(&b, "Main idea: %s\n", scenario.MainIdea)
	if scenario.WorldContext != "" {
		fmt.Fprintf(&b, "World: %s\n", scenario.WorldContext)
	}
	if scenario.PoliticalSituation != "" {
		fmt.Fprintf(&b, "Politics: %s\n", scenario.PoliticalSituation)
	}
	if len(scenario.KeyThemes) > 0 {
		fmt.Fprintf(&b, "Themes: %s\n", strings.Join(scenario.KeyThemes, ", "))
	}

	regions, err := s.regionRepo.ListByScenarioID(ctx, s.db, scenarioID)
	if err != nil {
		// Контекст без регионов лучше, чем отказ в подсказке
		s.logger.Warn("Failed to load regions for suggestion context", zap.Error(err))
		return b.String(), nil
	}
	if len(regions) > 0 {
		b.WriteString("Regions:\n")
		for i := range regions {
			fmt.Fprintf(&b, "- %s (%s, threat %d): %s\n",
				regions[i].Name, regions[i].Type, regions[i].ThreatLevel, regions[i].Description)
		}
	}
	return b.String(), nil
}
