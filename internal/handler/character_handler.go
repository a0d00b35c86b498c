package handler

import (
	"encoding/json"
	"net/http"

	"scenario-server/internal/models"
	"scenario-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CharacterHandler обслуживает персонажей игрока: /api/characters[/:id]
type CharacterHandler struct {
	service *service.CharacterService
	logger  *zap.Logger
}

func NewCharacterHandler(service *service.CharacterService, logger *zap.Logger) *CharacterHandler {
	return &CharacterHandler{
		service: service,
		logger:  logger.Named("CharacterHandler"),
	}
}

type CreateCharacterRequest struct {
	Name       string          `json:"name"`
	Class      string          `json:"class"`
	Level      int             `json:"level"`
	Background string          `json:"background"`
	Stats      json.RawMessage `json:"stats"`
	Skills     json.RawMessage `json:"skills"`
	Equipment  json.RawMessage `json:"equipment"`
	Notes      string          `json:"notes"`
	SessionID  *uuid.UUID      `json:"sessionId"`
}

func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req CreateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}
	character := models.PlayerCharacter{
		Name:       req.Name,
		Class:      req.Class,
		Level:      req.Level,
		Background: req.Background,
		Stats:      req.Stats,
		Skills:     req.Skills,
		Equipment:  req.Equipment,
		Notes:      req.Notes,
		SessionID:  req.SessionID,
		IsActive:   true,
	}
	if err := h.service.CreateCharacter(c.Request.Context(), userID, &character); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, character)
}

func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	characters, err := h.service.ListCharacters(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if characters == nil {
		characters = []models.PlayerCharacter{}
	}
	c.JSON(http.StatusOK, characters)
}

func (h *CharacterHandler) GetCharacter(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	characterID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	character, err := h.service.GetCharacter(c.Request.Context(), userID, characterID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	characterID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var upd models.PlayerCharacterUpdate
	if !bindJSON(c, &upd) {
		return
	}
	character, err := h.service.UpdateCharacter(c.Request.Context(), userID, characterID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	characterID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteCharacter(c.Request.Context(), userID, characterID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
