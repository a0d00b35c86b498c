package service

import (
	"context"

	"scenario-server/internal/models"

	"github.com/google/uuid"
)

// Операции над условиями окружения сценария.

func (s *ScenarioService) CreateCondition(ctx context.Context, userID, scenarioID uuid.UUID, cond *models.EnvironmentalCondition) error {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return err
	}
	cond.ScenarioID = scenarioID
	if cond.Severity == "" {
		cond.Severity = models.SeverityMild
	}
	if err := validateCondition(cond); err != nil {
		return err
	}
	return s.conditionRepo.Create(ctx, s.db, cond)
}

func (s *ScenarioService) ListConditions(ctx context.Context, userID, scenarioID uuid.UUID) ([]models.EnvironmentalCondition, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	return s.conditionRepo.ListByScenarioID(ctx, s.db, scenarioID)
}

func (s *ScenarioService) getOwnedCondition(ctx context.Context, userID, scenarioID, conditionID uuid.UUID) (*models.EnvironmentalCondition, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	cond, err := s.conditionRepo.GetByID(ctx, s.db, conditionID)
	if err != nil {
		return nil, err
	}
	if cond.ScenarioID != scenarioID {
		return nil, models.ErrConditionNotFound
	}
	return cond, nil
}

func (s *ScenarioService) GetCondition(ctx context.Context, userID, scenarioID, conditionID uuid.UUID) (*models.EnvironmentalCondition, error) {
	return s.getOwnedCondition(ctx, userID, scenarioID, conditionID)
}

func (s *ScenarioService) UpdateCondition(ctx context.Context, userID, scenarioID, conditionID uuid.UUID, upd models.EnvironmentalConditionUpdate) (*models.EnvironmentalCondition, error) {
	cond, err := s.getOwnedCondition(ctx, userID, scenarioID, conditionID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		cond.Name = *upd.Name
	}
	if upd.Description != nil {
		cond.Description = *upd.Description
	}
	if upd.Severity != nil {
		cond.Severity = *upd.Severity
	}
	if upd.AffectedRegions != nil {
		cond.AffectedRegions = *upd.AffectedRegions
	}
	if upd.Duration != nil {
		cond.Duration = *upd.Duration
	}
	if err := validateCondition(cond); err != nil {
		return nil, err
	}
	if err := s.conditionRepo.Update(ctx, s.db, cond); err != nil {
		return nil, err
	}
	return cond, nil
}

func (s *ScenarioService) DeleteCondition(ctx context.Context, userID, scenarioID, conditionID uuid.UUID) error {
	if _, err := s.getOwnedCondition(ctx, userID, scenarioID, conditionID); err != nil {
		return err
	}
	return s.conditionRepo.Delete(ctx, s.db, conditionID)
}
