package service

import (
	"context"

	"scenario-server/internal/models"

	"github.com/google/uuid"
)

// Операции над NPC сценария.

func (s *ScenarioService) CreateNPC(ctx context.Context, userID, scenarioID uuid.UUID, npc *models.ScenarioNPC) error {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return err
	}
	npc.ScenarioID = scenarioID
	if npc.Importance == "" {
		npc.Importance = models.ImportanceMinor
	}
	if npc.Status == "" {
		npc.Status = models.NPCStatusAlive
	}
	if err := validateNPC(npc); err != nil {
		return err
	}
	return s.npcRepo.Create(ctx, s.db, npc)
}

func (s *ScenarioService) ListNPCs(ctx context.Context, userID, scenarioID uuid.UUID) ([]models.ScenarioNPC, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	return s.npcRepo.ListByScenarioID(ctx, s.db, scenarioID)
}

func (s *ScenarioService) getOwnedNPC(ctx context.Context, userID, scenarioID, npcID uuid.UUID) (*models.ScenarioNPC, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	npc, err := s.npcRepo.GetByID(ctx, s.db, npcID)
	if err != nil {
		return nil, err
	}
	if npc.ScenarioID != scenarioID {
		return nil, models.ErrNPCNotFound
	}
	return npc, nil
}

func (s *ScenarioService) GetNPC(ctx context.Context, userID, scenarioID, npcID uuid.UUID) (*models.ScenarioNPC, error) {
	return s.getOwnedNPC(ctx, userID, scenarioID, npcID)
}

func (s *ScenarioService) UpdateNPC(ctx context.Context, userID, scenarioID, npcID uuid.UUID, upd models.ScenarioNPCUpdate) (*models.ScenarioNPC, error) {
	npc, err := s.getOwnedNPC(ctx, userID, scenarioID, npcID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		npc.Name = *upd.Name
	}
	if upd.Role != nil {
		npc.Role = *upd.Role
	}
	if upd.Description != nil {
		npc.Description = *upd.Description
	}
	if upd.Location != nil {
		npc.Location = *upd.Location
	}
	if upd.Faction != nil {
		npc.Faction = *upd.Faction
	}
	if upd.Importance != nil {
		npc.Importance = *upd.Importance
	}
	if upd.Status != nil {
		npc.Status = *upd.Status
	}
	if err := validateNPC(npc); err != nil {
		return nil, err
	}
	if err := s.npcRepo.Update(ctx, s.db, npc); err != nil {
		return nil, err
	}
	return npc, nil
}

func (s *ScenarioService) DeleteNPC(ctx context.Context, userID, scenarioID, npcID uuid.UUID) error {
	if _, err := s.getOwnedNPC(ctx, userID, scenarioID, npcID); err != nil {
		return err
	}
	return s.npcRepo.Delete(ctx, s.db, npcID)
}
