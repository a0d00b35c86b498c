package handler

import (
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
)

// Эндпоинты NPC сценария: /api/scenarios/:id/npcs[/:npcId]

type CreateNPCRequest struct {
	Name        string               `json:"name"`
	Role        string               `json:"role"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Faction     string               `json:"faction"`
	Importance  models.NPCImportance `json:"importance"`
	Status      models.NPCStatus     `json:"status"`
}

func (h *ScenarioHandler) CreateNPC(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateNPCRequest
	if !bindJSON(c, &req) {
		return
	}
	npc := models.ScenarioNPC{
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Location:    req.Location,
		Faction:     req.Faction,
		Importance:  req.Importance,
		Status:      req.Status,
	}
	if err := h.service.CreateNPC(c.Request.Context(), userID, scenarioID, &npc); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, npc)
}

func (h *ScenarioHandler) ListNPCs(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	npcs, err := h.service.ListNPCs(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if npcs == nil {
		npcs = []models.ScenarioNPC{}
	}
	c.JSON(http.StatusOK, npcs)
}

func (h *ScenarioHandler) GetNPC(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	npcID, ok := uuidParam(c, "npcId")
	if !ok {
		return
	}
	npc, err := h.service.GetNPC(c.Request.Context(), userID, scenarioID, npcID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, npc)
}

func (h *ScenarioHandler) UpdateNPC(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	npcID, ok := uuidParam(c, "npcId")
	if !ok {
		return
	}
	var upd models.ScenarioNPCUpdate
	if !bindJSON(c, &upd) {
		return
	}
	npc, err := h.service.UpdateNPC(c.Request.Context(), userID, scenarioID, npcID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, npc)
}

func (h *ScenarioHandler) DeleteNPC(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	npcID, ok := uuidParam(c, "npcId")
	if !ok {
		return
	}
	if err := h.service.DeleteNPC(c.Request.Context(), userID, scenarioID, npcID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
