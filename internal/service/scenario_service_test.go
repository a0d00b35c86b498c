package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"scenario-server/internal/models"
	"scenario-server/internal/repository/mocks"
	"scenario-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScenarioService(
	scenarioRepo *mocks.ScenarioRepository,
	regionRepo *mocks.RegionRepository,
) *service.ScenarioService {
	return service.NewScenarioService(
		scenarioRepo,
		regionRepo,
		new(mocks.NPCRepository),
		new(mocks.QuestRepository),
		new(mocks.ConditionRepository),
		nil, // querier не нужен: моки игнорируют его
		nil, // без Redis кэш работает вхолостую
		zap.NewNop(),
	)
}

func fieldMessages(t *testing.T, err error) []string {
	t.Helper()
	verr, ok := models.AsValidationError(err)
	require.True(t, ok, "expected *models.ValidationError, got %v", err)
	return verr.Messages()
}

func TestScenarioService_CreateScenario(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success seeds ten default regions", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioID := uuid.New()
		scenarioRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(s *models.Scenario) bool {
			return s.UserID == userID && s.Status == models.ScenarioStatusDraft
		})).Run(func(args mock.Arguments) {
			args.Get(2).(*models.Scenario).ID = scenarioID
		}).Return(nil).Once()
		regionRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(r *models.Region) bool {
			return r.ScenarioID == scenarioID && r.Name != ""
		})).Return(nil).Times(10)

		scenario := &models.Scenario{
			Title:    "The Ashfall Basin",
			MainIdea: "A water war is brewing between the basin factions.",
		}
		err := svc.CreateScenario(ctx, userID, scenario)

		require.NoError(t, err)
		assert.Equal(t, models.ScenarioStatusDraft, scenario.Status)
		scenarioRepo.AssertExpectations(t)
		regionRepo.AssertExpectations(t)
	})

	t.Run("Validation rejects short main idea and long title", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenario := &models.Scenario{
			Title:    strings.Repeat("x", models.MaxTitleLength+1),
			MainIdea: "too short",
		}
		err := svc.CreateScenario(ctx, userID, scenario)

		msgs := fieldMessages(t, err)
		assert.Contains(t, msgs, "title: must be at most 200 characters")
		assert.Contains(t, msgs, "mainIdea: must be at least 10 characters")
		scenarioRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Validation rejects unknown status", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenario := &models.Scenario{
			Title:    "Valid title",
			MainIdea: "A perfectly reasonable premise.",
			Status:   models.ScenarioStatus("published"),
		}
		err := svc.CreateScenario(ctx, userID, scenario)

		msgs := fieldMessages(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "status: must be one of")
	})

	t.Run("Seeding failure does not fail the create", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		regionRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).
			Return(errors.New("db down")).Once()

		scenario := &models.Scenario{
			Title:    "Scenario without regions",
			MainIdea: "Seeding will fail but the scenario must survive.",
		}
		err := svc.CreateScenario(ctx, userID, scenario)

		require.NoError(t, err)
		scenarioRepo.AssertExpectations(t)
		regionRepo.AssertExpectations(t)
	})
}

func TestScenarioService_GetScenario(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scenarioID := uuid.New()

	t.Run("Foreign scenario is reported as not found", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(&models.Scenario{ID: scenarioID, UserID: uuid.New()}, nil).Once()

		scenario, err := svc.GetScenario(ctx, userID, scenarioID)

		assert.Nil(t, scenario)
		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		scenarioRepo.AssertExpectations(t)
	})

	t.Run("Owned scenario is returned", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		expected := &models.Scenario{ID: scenarioID, UserID: userID, Title: "Mine"}
		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(expected, nil).Once()

		scenario, err := svc.GetScenario(ctx, userID, scenarioID)

		require.NoError(t, err)
		assert.Equal(t, expected, scenario)
	})
}

func TestScenarioService_UpdateScenario(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scenarioID := uuid.New()

	existing := func() *models.Scenario {
		return &models.Scenario{
			ID:       scenarioID,
			UserID:   userID,
			Title:    "Original title",
			MainIdea: "Original main idea, long enough to validate.",
			Status:   models.ScenarioStatusActive,
		}
	}

	t.Run("Partial update touches only provided fields", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(existing(), nil).Once()
		scenarioRepo.On("Update", mock.Anything, mock.Anything, mock.MatchedBy(func(s *models.Scenario) bool {
			return s.Title == "New title" &&
				s.MainIdea == "Original main idea, long enough to validate." &&
				s.Status == models.ScenarioStatusActive
		})).Return(nil).Once()

		newTitle := "New title"
		updated, err := svc.UpdateScenario(ctx, userID, scenarioID, models.ScenarioUpdate{Title: &newTitle})

		require.NoError(t, err)
		assert.Equal(t, "New title", updated.Title)
		assert.Equal(t, models.ScenarioStatusActive, updated.Status)
		scenarioRepo.AssertExpectations(t)
	})

	t.Run("Merged result is validated", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(existing(), nil).Once()

		short := "nope"
		_, err := svc.UpdateScenario(ctx, userID, scenarioID, models.ScenarioUpdate{MainIdea: &short})

		msgs := fieldMessages(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0], "mainIdea")
		scenarioRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Foreign scenario cannot be updated", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		foreign := existing()
		foreign.UserID = uuid.New()
		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(foreign, nil).Once()

		newTitle := "Hijacked"
		_, err := svc.UpdateScenario(ctx, userID, scenarioID, models.ScenarioUpdate{Title: &newTitle})

		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		scenarioRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScenarioService_DeleteScenario(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scenarioID := uuid.New()

	t.Run("Owned scenario is deleted", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(&models.Scenario{ID: scenarioID, UserID: userID}, nil).Once()
		scenarioRepo.On("Delete", mock.Anything, mock.Anything, scenarioID).Return(nil).Once()

		err := svc.DeleteScenario(ctx, userID, scenarioID)

		require.NoError(t, err)
		scenarioRepo.AssertExpectations(t)
	})

	t.Run("Repo not found is propagated", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(nil, models.ErrScenarioNotFound).Once()

		err := svc.DeleteScenario(ctx, userID, scenarioID)

		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		scenarioRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScenarioService_SeedDefaultRegions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	scenarioID := uuid.New()

	owned := &models.Scenario{ID: scenarioID, UserID: userID}

	t.Run("Existing regions are returned without writes", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		existing := []models.Region{{ID: uuid.New(), ScenarioID: scenarioID, Name: "Ashfall City"}}
		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).Return(owned, nil).Once()
		regionRepo.On("CountByScenarioID", mock.Anything, mock.Anything, scenarioID).Return(1, nil).Once()
		regionRepo.On("ListByScenarioID", mock.Anything, mock.Anything, scenarioID).Return(existing, nil).Once()

		regions, err := svc.SeedDefaultRegions(ctx, userID, scenarioID)

		require.NoError(t, err)
		assert.Equal(t, existing, regions)
		regionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty scenario gets the full default set", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).Return(owned, nil).Once()
		regionRepo.On("CountByScenarioID", mock.Anything, mock.Anything, scenarioID).Return(0, nil).Once()
		regionRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(r *models.Region) bool {
			return r.ScenarioID == scenarioID
		})).Return(nil).Times(10)

		regions, err := svc.SeedDefaultRegions(ctx, userID, scenarioID)

		require.NoError(t, err)
		assert.Len(t, regions, 10)
		names := make(map[string]bool, len(regions))
		for _, r := range regions {
			names[r.Name] = true
			assert.GreaterOrEqual(t, r.ThreatLevel, models.MinThreatLevel)
			assert.LessOrEqual(t, r.ThreatLevel, models.MaxThreatLevel)
		}
		// Набор фиксированный, дубликатов имен нет
		assert.Len(t, names, 10)
		regionRepo.AssertExpectations(t)
	})

	t.Run("Foreign scenario cannot be seeded", func(t *testing.T) {
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := newScenarioService(scenarioRepo, regionRepo)

		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(&models.Scenario{ID: scenarioID, UserID: uuid.New()}, nil).Once()

		_, err := svc.SeedDefaultRegions(ctx, userID, scenarioID)

		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		regionRepo.AssertNotCalled(t, "CountByScenarioID", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestScenarioService_ListScenarios(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	scenarioRepo := new(mocks.ScenarioRepository)
	regionRepo := new(mocks.RegionRepository)
	svc := newScenarioService(scenarioRepo, regionRepo)

	expected := []models.Scenario{
		{ID: uuid.New(), UserID: userID, Title: "First"},
		{ID: uuid.New(), UserID: userID, Title: "Second"},
	}
	scenarioRepo.On("ListByUserID", mock.Anything, mock.Anything, userID).Return(expected, nil).Once()

	scenarios, err := svc.ListScenarios(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, scenarios)
	scenarioRepo.AssertExpectations(t)
}
