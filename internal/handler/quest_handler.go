package handler

import (
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
)

// Эндпоинты квестов сценария: /api/scenarios/:id/quests[/:questId]

type CreateQuestRequest struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Status       models.QuestStatus   `json:"status"`
	Priority     models.QuestPriority `json:"priority"`
	Rewards      string               `json:"rewards"`
	Requirements string               `json:"requirements"`
}

func (h *ScenarioHandler) CreateQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateQuestRequest
	if !bindJSON(c, &req) {
		return
	}
	quest := models.ScenarioQuest{
		Title:        req.Title,
		Description:  req.Description,
		Status:       req.Status,
		Priority:     req.Priority,
		Rewards:      req.Rewards,
		Requirements: req.Requirements,
	}
	if err := h.service.CreateQuest(c.Request.Context(), userID, scenarioID, &quest); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, quest)
}

func (h *ScenarioHandler) ListQuests(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	quests, err := h.service.ListQuests(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if quests == nil {
		quests = []models.ScenarioQuest{}
	}
	c.JSON(http.StatusOK, quests)
}

func (h *ScenarioHandler) GetQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	questID, ok := uuidParam(c, "questId")
	if !ok {
		return
	}
	quest, err := h.service.GetQuest(c.Request.Context(), userID, scenarioID, questID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quest)
}

func (h *ScenarioHandler) UpdateQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	questID, ok := uuidParam(c, "questId")
	if !ok {
		return
	}
	var upd models.ScenarioQuestUpdate
	if !bindJSON(c, &upd) {
		return
	}
	quest, err := h.service.UpdateQuest(c.Request.Context(), userID, scenarioID, questID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quest)
}

func (h *ScenarioHandler) DeleteQuest(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	questID, ok := uuidParam(c, "questId")
	if !ok {
		return
	}
	if err := h.service.DeleteQuest(c.Request.Context(), userID, scenarioID, questID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
