package service

import (
	"context"

	"scenario-server/internal/models"
	"scenario-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CharacterService - CRUD персонажей игрока. Персонаж принадлежит
// пользователю и опционально привязан к сессии.
type CharacterService struct {
	characterRepo repository.CharacterRepository
	sessionRepo   repository.SessionRepository
	logger        *zap.Logger
}

func NewCharacterService(
	characterRepo repository.CharacterRepository,
	sessionRepo repository.SessionRepository,
	logger *zap.Logger,
) *CharacterService {
	return &CharacterService{
		characterRepo: characterRepo,
		sessionRepo:   sessionRepo,
		logger:        logger.Named("CharacterService"),
	}
}

func (s *CharacterService) getOwnedCharacter(ctx context.Context, userID, characterID uuid.UUID) (*models.PlayerCharacter, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, err
	}
	if character.UserID != userID {
		return nil, models.ErrCharacterNotFound
	}
	return character, nil
}

// checkSessionExists проверяет, что сессия для привязки существует.
// Привязать персонажа можно к любой сессии (игрок не обязан быть ее мастером).
func (s *CharacterService) checkSessionExists(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.sessionRepo.GetByID(ctx, sessionID)
	return err
}

func (s *CharacterService) CreateCharacter(ctx context.Context, userID uuid.UUID, character *models.PlayerCharacter) error {
	character.UserID = userID
	if character.Level == 0 {
		character.Level = 1
	}
	if err := validateCharacter(character); err != nil {
		return err
	}
	if character.SessionID != nil {
		if err := s.checkSessionExists(ctx, *character.SessionID); err != nil {
			return err
		}
	}
	return s.characterRepo.Create(ctx, character)
}

func (s *CharacterService) GetCharacter(ctx context.Context, userID, characterID uuid.UUID) (*models.PlayerCharacter, error) {
	return s.getOwnedCharacter(ctx, userID, characterID)
}

func (s *CharacterService) ListCharacters(ctx context.Context, userID uuid.UUID) ([]models.PlayerCharacter, error) {
	return s.characterRepo.ListByUserID(ctx, userID)
}

func (s *CharacterService) UpdateCharacter(ctx context.Context, userID, characterID uuid.UUID, upd models.PlayerCharacterUpdate) (*models.PlayerCharacter, error) {
	character, err := s.getOwnedCharacter(ctx, userID, characterID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		character.Name = *upd.Name
	}
	if upd.Class != nil {
		character.Class = *upd.Class
	}
	if upd.Level != nil {
		character.Level = *upd.Level
	}
	if upd.Background != nil {
		character.Background = *upd.Background
	}
	if upd.Stats != nil {
		character.Stats = *upd.Stats
	}
	if upd.Skills != nil {
		character.Skills = *upd.Skills
	}
	if upd.Equipment != nil {
		character.Equipment = *upd.Equipment
	}
	if upd.Notes != nil {
		character.Notes = *upd.Notes
	}
	if upd.IsActive != nil {
		character.IsActive = *upd.IsActive
	}
	if upd.SessionID != nil {
		if err := s.checkSessionExists(ctx, *upd.SessionID); err != nil {
			return nil, err
		}
		character.SessionID = upd.SessionID
	}
	if err := validateCharacter(character); err != nil {
		return nil, err
	}
	if err := s.characterRepo.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *CharacterService) DeleteCharacter(ctx context.Context, userID, characterID uuid.UUID) error {
	if _, err := s.getOwnedCharacter(ctx, userID, characterID); err != nil {
		return err
	}
	return s.characterRepo.Delete(ctx, characterID)
}
