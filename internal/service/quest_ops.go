package service

import (
	"context"

	"scenario-server/internal/models"

	"github.com/google/uuid"
)

// Операции над квестами сценария.

func (s *ScenarioService) CreateQuest(ctx context.Context, userID, scenarioID uuid.UUID, quest *models.ScenarioQuest) error {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return err
	}
	quest.ScenarioID = scenarioID
	if quest.Status == "" {
		quest.Status = models.QuestStatusNotStarted
	}
	if quest.Priority == "" {
		quest.Priority = models.PriorityMedium
	}
	if err := validateQuest(quest); err != nil {
		return err
	}
	return s.questRepo.Create(ctx, s.db, quest)
}

func (s *ScenarioService) ListQuests(ctx context.Context, userID, scenarioID uuid.UUID) ([]models.ScenarioQuest, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	return s.questRepo.ListByScenarioID(ctx, s.db, scenarioID)
}

func (s *ScenarioService) getOwnedQuest(ctx context.Context, userID, scenarioID, questID uuid.UUID) (*models.ScenarioQuest, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	quest, err := s.questRepo.GetByID(ctx, s.db, questID)
	if err != nil {
		return nil, err
	}
	if quest.ScenarioID != scenarioID {
		return nil, models.ErrQuestNotFound
	}
	return quest, nil
}

func (s *ScenarioService) GetQuest(ctx context.Context, userID, scenarioID, questID uuid.UUID) (*models.ScenarioQuest, error) {
	return s.getOwnedQuest(ctx, userID, scenarioID, questID)
}

func (s *ScenarioService) UpdateQuest(ctx context.Context, userID, scenarioID, questID uuid.UUID, upd models.ScenarioQuestUpdate) (*models.ScenarioQuest, error) {
	quest, err := s.getOwnedQuest(ctx, userID, scenarioID, questID)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		quest.Title = *upd.Title
	}
	if upd.Description != nil {
		quest.Description = *upd.Description
	}
	if upd.Status != nil {
		quest.Status = *upd.Status
	}
	if upd.Priority != nil {
		quest.Priority = *upd.Priority
	}
	if upd.Rewards != nil {
		quest.Rewards = *upd.Rewards
	}
	if upd.Requirements != nil {
		quest.Requirements = *upd.Requirements
	}
	if err := validateQuest(quest); err != nil {
		return nil, err
	}
	if err := s.questRepo.Update(ctx, s.db, quest); err != nil {
		return nil, err
	}
	return quest, nil
}

func (s *ScenarioService) DeleteQuest(ctx context.Context, userID, scenarioID, questID uuid.UUID) error {
	if _, err := s.getOwnedQuest(ctx, userID, scenarioID, questID); err != nil {
		return err
	}
	return s.questRepo.Delete(ctx, s.db, questID)
}
