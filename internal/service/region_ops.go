package service

import (
	"context"
	"encoding/json"

	"scenario-server/internal/models"

	"github.com/google/uuid"
)

// Операции над регионами сценария. Доступ всегда проверяется через
// родительский сценарий: регион чужого сценария недостижим.

func (s *ScenarioService) CreateRegion(ctx context.Context, userID, scenarioID uuid.UUID, region *models.Region) error {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return err
	}
	region.ScenarioID = scenarioID
	if region.Type == "" {
		region.Type = models.RegionTypeSettlement
	}
	if region.PoliticalStance == "" {
		region.PoliticalStance = models.StanceNeutral
	}
	if region.ThreatLevel == 0 {
		region.ThreatLevel = models.MinThreatLevel
	}
	if err := validateRegion(region); err != nil {
		return err
	}
	if err := s.regionRepo.Create(ctx, s.db, region); err != nil {
		return err
	}
	s.listCache.Invalidate(ctx, regionsCacheKey(scenarioID))
	return nil
}

func (s *ScenarioService) ListRegions(ctx context.Context, userID, scenarioID uuid.UUID) ([]models.Region, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	key := regionsCacheKey(scenarioID)
	if data, ok := s.listCache.Get(ctx, key); ok {
		var cached []models.Region
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		s.listCache.Invalidate(ctx, key)
	}
	regions, err := s.regionRepo.ListByScenarioID(ctx, s.db, scenarioID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(regions); err == nil {
		s.listCache.Set(ctx, key, data)
	}
	return regions, nil
}

// getOwnedRegion достает регион и проверяет всю цепочку владения.
func (s *ScenarioService) getOwnedRegion(ctx context.Context, userID, scenarioID, regionID uuid.UUID) (*models.Region, error) {
	if _, err := s.getOwnedScenario(ctx, userID, scenarioID); err != nil {
		return nil, err
	}
	region, err := s.regionRepo.GetByID(ctx, s.db, regionID)
	if err != nil {
		return nil, err
	}
	if region.ScenarioID != scenarioID {
		return nil, models.ErrRegionNotFound
	}
	return region, nil
}

func (s *ScenarioService) GetRegion(ctx context.Context, userID, scenarioID, regionID uuid.UUID) (*models.Region, error) {
	return s.getOwnedRegion(ctx, userID, scenarioID, regionID)
}

func (s *ScenarioService) UpdateRegion(ctx context.Context, userID, scenarioID, regionID uuid.UUID, upd models.RegionUpdate) (*models.Region, error) {
	region, err := s.getOwnedRegion(ctx, userID, scenarioID, regionID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		region.Name = *upd.Name
	}
	if upd.Type != nil {
		region.Type = *upd.Type
	}
	if upd.Description != nil {
		region.Description = *upd.Description
	}
	if upd.ControllingFaction != nil {
		region.ControllingFaction = *upd.ControllingFaction
	}
	if upd.Population != nil {
		region.Population = *upd.Population
	}
	if upd.Resources != nil {
		region.Resources = *upd.Resources
	}
	if upd.ThreatLevel != nil {
		region.ThreatLevel = *upd.ThreatLevel
	}
	if upd.PoliticalStance != nil {
		region.PoliticalStance = *upd.PoliticalStance
	}
	if upd.TradeRoutes != nil {
		region.TradeRoutes = *upd.TradeRoutes
	}
	if err := validateRegion(region); err != nil {
		return nil, err
	}
	if err := s.regionRepo.Update(ctx, s.db, region); err != nil {
		return nil, err
	}
	s.listCache.Invalidate(ctx, regionsCacheKey(scenarioID))
	return region, nil
}

func (s *ScenarioService) DeleteRegion(ctx context.Context, userID, scenarioID, regionID uuid.UUID) error {
	if _, err := s.getOwnedRegion(ctx, userID, scenarioID, regionID); err != nil {
		return err
	}
	if err := s.regionRepo.Delete(ctx, s.db, regionID); err != nil {
		return err
	}
	s.listCache.Invalidate(ctx, regionsCacheKey(scenarioID))
	return nil
}
