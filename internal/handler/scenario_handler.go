package handler

import (
	"net/http"

	"scenario-server/internal/models"
	"scenario-server/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScenarioHandler обслуживает сценарии и их дочерние ресурсы
// (регионы, NPC, квесты, условия окружения).
type ScenarioHandler struct {
	service *service.ScenarioService
	logger  *zap.Logger
}

func NewScenarioHandler(service *service.ScenarioService, logger *zap.Logger) *ScenarioHandler {
	return &ScenarioHandler{
		service: service,
		logger:  logger.Named("ScenarioHandler"),
	}
}

// CreateScenarioRequest - тело POST /api/scenarios.
type CreateScenarioRequest struct {
	Title              string                `json:"title"`
	MainIdea           string                `json:"mainIdea"`
	WorldContext       string                `json:"worldContext"`
	PoliticalSituation string                `json:"politicalSituation"`
	KeyThemes          []string              `json:"keyThemes"`
	Status             models.ScenarioStatus `json:"status"`
}

func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req CreateScenarioRequest
	if !bindJSON(c, &req) {
		return
	}
	scenario := models.Scenario{
		Title:              req.Title,
		MainIdea:           req.MainIdea,
		WorldContext:       req.WorldContext,
		PoliticalSituation: req.PoliticalSituation,
		KeyThemes:          req.KeyThemes,
		Status:             req.Status,
	}
	if err := h.service.CreateScenario(c.Request.Context(), userID, &scenario); err != nil {
		handleServiceError(c, err)
		return
	}
	scenariosCreatedTotal.Inc()
	c.JSON(http.StatusCreated, scenario)
}

func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarios, err := h.service.ListScenarios(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if scenarios == nil {
		scenarios = []models.Scenario{}
	}
	c.JSON(http.StatusOK, scenarios)
}

func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	scenario, err := h.service.GetScenario(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var upd models.ScenarioUpdate
	if !bindJSON(c, &upd) {
		return
	}
	scenario, err := h.service.UpdateScenario(c.Request.Context(), userID, scenarioID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteScenario(c.Request.Context(), userID, scenarioID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ScenarioHandler) SeedDefaultRegions(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	scenarioID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	regions, err := h.service.SeedDefaultRegions(c.Request.Context(), userID, scenarioID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	regionsSeededTotal.Inc()
	c.JSON(http.StatusOK, regions)
}
