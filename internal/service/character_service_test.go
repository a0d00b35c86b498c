package service_test

import (
	"context"
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

func TestCharacterService_CreateCharacter(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Level defaults to one", func(t *testing.T) {
		characterRepo := new(mocks.CharacterRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := service.NewCharacterService(characterRepo, sessionRepo, zap.NewNop())

		characterRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.PlayerCharacter) bool {
			return c.UserID == userID && c.Level == 1
		})).Return(nil).Once()

		err := svc.CreateCharacter(ctx, userID, &models.PlayerCharacter{Name: "Kessa"})

		require.NoError(t, err)
		characterRepo.AssertExpectations(t)
	})

	t.Run("Attached session must exist", func(t *testing.T) {
		characterRepo := new(mocks.CharacterRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := service.NewCharacterService(characterRepo, sessionRepo, zap.NewNop())

		sessionID := uuid.New()
		sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(nil, models.ErrSessionNotFound).Once()

		err := svc.CreateCharacter(ctx, userID, &models.PlayerCharacter{
			Name:      "Kessa",
			SessionID: &sessionID,
		})

		assert.ErrorIs(t, err, models.ErrSessionNotFound)
		characterRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Name is required", func(t *testing.T) {
		characterRepo := new(mocks.CharacterRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := service.NewCharacterService(characterRepo, sessionRepo, zap.NewNop())

		err := svc.CreateCharacter(ctx, userID, &models.PlayerCharacter{})

		verr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "name", verr.Fields[0].Field)
	})
}

func TestCharacterService_UpdateCharacter(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	characterID := uuid.New()

	t.Run("Foreign character is not found", func(t *testing.T) {
		characterRepo := new(mocks.CharacterRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := service.NewCharacterService(characterRepo, sessionRepo, zap.NewNop())

		characterRepo.On("GetByID", mock.Anything, characterID).
			Return(&models.PlayerCharacter{ID: characterID, UserID: uuid.New(), Name: "Kessa"}, nil).Once()

		newName := "Stolen"
		_, err := svc.UpdateCharacter(ctx, userID, characterID, models.PlayerCharacterUpdate{Name: &newName})

		assert.ErrorIs(t, err, models.ErrCharacterNotFound)
		characterRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Session reattachment is checked", func(t *testing.T) {
		characterRepo := new(mocks.CharacterRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := service.NewCharacterService(characterRepo, sessionRepo, zap.NewNop())

		characterRepo.On("GetByID", mock.Anything, characterID).
			Return(&models.PlayerCharacter{ID: characterID, UserID: userID, Name: "Kessa", Level: 3}, nil).Once()

		sessionID := uuid.New()
		sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(&models.Session{ID: sessionID}, nil).Once()
		characterRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *models.PlayerCharacter) bool {
			return c.SessionID != nil && *c.SessionID == sessionID && c.Level == 3
		})).Return(nil).Once()

		updated, err := svc.UpdateCharacter(ctx, userID, characterID, models.PlayerCharacterUpdate{SessionID: &sessionID})

		require.NoError(t, err)
		assert.Equal(t, 3, updated.Level)
		characterRepo.AssertExpectations(t)
		sessionRepo.AssertExpectations(t)
	})
}
