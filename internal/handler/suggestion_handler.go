package handler

import (
	"net/http"

	"scenario-server/internal/models"
	"scenario-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SuggestionHandler - AI-подсказки: /api/suggestions/{npc,event,search}.
// Каждый маршрут фиксирует target, тело задает контекст и запрос.
type SuggestionHandler struct {
	service *service.SuggestionService
	logger  *zap.Logger
}

func NewSuggestionHandler(service *service.SuggestionService, logger *zap.Logger) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		logger:  logger.Named("SuggestionHandler"),
	}
}

type SuggestionRequestBody struct {
	ScenarioID *uuid.UUID `json:"scenarioId"`
	Prompt     string     `json:"prompt"`
}

func (h *SuggestionHandler) SuggestNPC(c *gin.Context) {
	h.suggest(c, "npc")
}

func (h *SuggestionHandler) SuggestEvent(c *gin.Context) {
	h.suggest(c, "event")
}

func (h *SuggestionHandler) SuggestSearch(c *gin.Context) {
	h.suggest(c, "search")
}

func (h *SuggestionHandler) suggest(c *gin.Context, target string) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var body SuggestionRequestBody
	if !bindJSON(c, &body) {
		return
	}
	suggestion, err := h.service.Suggest(c.Request.Context(), userID, models.SuggestionRequest{
		ScenarioID: body.ScenarioID,
		Target:     target,
		Prompt:     body.Prompt,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
