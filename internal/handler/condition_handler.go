package handler

import (
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Эндпоинты условий окружения: /api/scenarios/:id/conditions[/:conditionId]

type CreateConditionRequest struct {
	Name            string                   `json:"name"`
	Description     string                   `json:"description"`
	Severity        models.ConditionSeverity `json:"severity"`
	AffectedRegions []uuid.UUID              `json:"affectedRegions"`
	Duration        string                   `json:"duration"`
}

func (h *ScenarioHandler) CreateCondition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateConditionRequest
	if !bindJSON(c, &req) {
		return
	}
	cond := models.EnvironmentalCondition{
		Name:            req.Name,
		Description:     req.Description,
		Severity:        req.Severity,
		AffectedRegions: req.AffectedRegions,
		Duration:        req.Duration,
	}
	if err := h.service.CreateCondition(c.Request.Context(), userID, scenarioID, &cond); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cond)
}

func (h *ScenarioHandler) ListConditions(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	conditions, err := h.service.ListConditions(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if conditions == nil {
		conditions = []models.EnvironmentalCondition{}
	}
	c.JSON(http.StatusOK, conditions)
}

func (h *ScenarioHandler) GetCondition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	conditionID, ok := uuidParam(c, "conditionId")
	if !ok {
		return
	}
	cond, err := h.service.GetCondition(c.Request.Context(), userID, scenarioID, conditionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cond)
}

func (h *ScenarioHandler) UpdateCondition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	conditionID, ok := uuidParam(c, "conditionId")
	if !ok {
		return
	}
	var upd models.EnvironmentalConditionUpdate
	if !bindJSON(c, &upd) {
		return
	}
	cond, err := h.service.UpdateCondition(c.Request.Context(), userID, scenarioID, conditionID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cond)
}

func (h *ScenarioHandler) DeleteCondition(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	conditionID, ok := uuidParam(c, "conditionId")
	if !ok {
		return
	}
	if err := h.service.DeleteCondition(c.Request.Context(), userID, scenarioID, conditionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
