package handler

import (
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
)

// Эндпоинты регионов сценария. Вложенный маршрут:
// /api/scenarios/:id/regions[/:regionId]

// CreateRegionRequest - тело POST региона.
type CreateRegionRequest struct {
	Name               string                 `json:"name"`
	Type               models.RegionType      `json:"type"`
	Description        string                 `json:"description"`
	ControllingFaction string                 `json:"controllingFaction"`
	Population         int                    `json:"population"`
	Resources          []string               `json:"resources"`
	ThreatLevel        int                    `json:"threatLevel"`
	PoliticalStance    models.PoliticalStance `json:"politicalStance"`
	TradeRoutes        []string               `json:"tradeRoutes"`
}

func (h *ScenarioHandler) CreateRegion(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateRegionRequest
	if !bindJSON(c, &req) {
		return
	}
	region := models.Region{
		Name:               req.Name,
		Type:               req.Type,
		Description:        req.Description,
		ControllingFaction: req.ControllingFaction,
		Population:         req.Population,
		Resources:          req.Resources,
		ThreatLevel:        req.ThreatLevel,
		PoliticalStance:    req.PoliticalStance,
		TradeRoutes:        req.TradeRoutes,
	}
	if err := h.service.CreateRegion(c.Request.Context(), userID, scenarioID, &region); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, region)
}

func (h *ScenarioHandler) ListRegions(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	regions, err := h.service.ListRegions(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if regions == nil {
		regions = []models.Region{}
	}
	c.JSON(http.StatusOK, regions)
}

func (h *ScenarioHandler) GetRegion(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	regionID, ok := uuidParam(c, "regionId")
	if !ok {
		return
	}
	region, err := h.service.GetRegion(c.Request.Context(), userID, scenarioID, regionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *ScenarioHandler) UpdateRegion(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	regionID, ok := uuidParam(c, "regionId")
	if !ok {
		return
	}
	var upd models.RegionUpdate
	if !bindJSON(c, &upd) {
		return
	}
	region, err := h.service.UpdateRegion(c.Request.Context(), userID, scenarioID, regionID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *ScenarioHandler) DeleteRegion(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	regionID, ok := uuidParam(c, "regionId")
	if !ok {
		return
	}
	if err := h.service.DeleteRegion(c.Request.Context(), userID, scenarioID, regionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
