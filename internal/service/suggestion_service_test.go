package service_test

import (
	"context"
	"errors"
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

type aiClientMock struct {
	mock.Mock
}

func (m *aiClientMock) Suggest(ctx context.Context, target, prompt, scenarioContext string) (string, error) {
	args := m.Called(ctx, target, prompt, scenarioContext)
	return args.String(0), args.Error(1)
}

func (m *aiClientMock) Model() string {
	args := m.Called()
	return args.String(0)
}

func TestSuggestionService_Suggest(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newService := func() (*service.SuggestionService, *aiClientMock, *mocks.ScenarioRepository, *mocks.RegionRepository) {
		ai := new(aiClientMock)
		scenarioRepo := new(mocks.ScenarioRepository)
		regionRepo := new(mocks.RegionRepository)
		svc := service.NewSuggestionService(ai, scenarioRepo, regionRepo, nil, zap.NewNop())
		return svc, ai, scenarioRepo, regionRepo
	}

	t.Run("Target is required", func(t *testing.T) {
		svc, ai, _, _ := newService()

		_, err := svc.Suggest(ctx, userID, models.SuggestionRequest{Prompt: "anything"})

		verr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "target", verr.Fields[0].Field)
		ai.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Suggestion without scenario context", func(t *testing.T) {
		svc, ai, scenarioRepo, _ := newService()

		ai.On("Suggest", mock.Anything, "npc", "a gruff caravan guard", "").
			Return("Brann, a scarred veteran of the Glass Road.", nil).Once()
		ai.On("Model").Return("test-model").Once()

		suggestion, err := svc.Suggest(ctx, userID, models.SuggestionRequest{
			Target: "npc",
			Prompt: "a gruff caravan guard",
		})

		require.NoError(t, err)
		assert.Equal(t, "npc", suggestion.Target)
		assert.Equal(t, "Brann, a scarred veteran of the Glass Road.", suggestion.Text)
		assert.Equal(t, "test-model", suggestion.Model)
		scenarioRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
		ai.AssertExpectations(t)
	})

	t.Run("Scenario context includes regions", func(t *testing.T) {
		svc, ai, scenarioRepo, regionRepo := newService()

		scenarioID := uuid.New()
		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(&models.Scenario{
				ID:       scenarioID,
				UserID:   userID,
				Title:    "The Ashfall Basin",
				MainIdea: "A water war is brewing.",
			}, nil).Once()
		regionRepo.On("ListByScenarioID", mock.Anything, mock.Anything, scenarioID).
			Return([]models.Region{{Name: "Drywell", Type: models.RegionTypeSettlement, ThreatLevel: 1}}, nil).Once()

		ai.On("Suggest", mock.Anything, "event", "a festival gone wrong", mock.MatchedBy(func(scenarioContext string) bool {
			assert.Contains(t, scenarioContext, "Title: The Ashfall Basin")
			assert.Contains(t, scenarioContext, "Drywell")
			return true
		})).Return("The well dries up mid-celebration.", nil).Once()
		ai.On("Model").Return("test-model").Once()

		suggestion, err := svc.Suggest(ctx, userID, models.SuggestionRequest{
			ScenarioID: &scenarioID,
			Target:     "event",
			Prompt:     "a festival gone wrong",
		})

		require.NoError(t, err)
		assert.Equal(t, "The well dries up mid-celebration.", suggestion.Text)
		ai.AssertExpectations(t)
	})

	t.Run("Foreign scenario context is refused", func(t *testing.T) {
		svc, ai, scenarioRepo, _ := newService()

		scenarioID := uuid.New()
		scenarioRepo.On("GetByID", mock.Anything, mock.Anything, scenarioID).
			Return(&models.Scenario{ID: scenarioID, UserID: uuid.New()}, nil).Once()

		_, err := svc.Suggest(ctx, userID, models.SuggestionRequest{
			ScenarioID: &scenarioID,
			Target:     "npc",
		})

		assert.ErrorIs(t, err, models.ErrScenarioNotFound)
		ai.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Upstream failure maps to suggestion error", func(t *testing.T) {
		svc, ai, _, _ := newService()

		upstream := errors.New("429 rate limited")
		ai.On("Suggest", mock.Anything, "search", "", "").Return("", upstream).Once()

		suggestion, err := svc.Suggest(ctx, userID, models.SuggestionRequest{Target: "search"})

		assert.Nil(t, suggestion)
		assert.ErrorIs(t, err, models.ErrSuggestionFailed)
		assert.ErrorIs(t, err, upstream)
	})
}
