package handler

import (
	"net/http"

	"scenario-server/internal/models"
	"scenario-server/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHandler обслуживает сессии и их вложенные ресурсы: участников,
// таймлайн и граф узлов.
type SessionHandler struct {
	service *service.SessionService
	logger  *zap.Logger
}

func NewSessionHandler(service *service.SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.Named("SessionHandler"),
	}
}

type CreateSessionRequest struct {
	Name        string             `json:"name"`
	CreatorMode models.CreatorMode `json:"creatorMode"`
	AIMode      models.AIMode      `json:"aiMode"`
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	var req CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}
	session := models.Session{
		Name:        req.Name,
		CreatorMode: req.CreatorMode,
		AIMode:      req.AIMode,
	}
	if err := h.service.CreateSession(c.Request.Context(), userID, &session); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessions, err := h.service.ListSessions(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	session, err := h.service.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) UpdateSession(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var upd models.SessionUpdate
	if !bindJSON(c, &upd) {
		return
	}
	session, err := h.service.UpdateSession(c.Request.Context(), userID, sessionID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPacing - GET /api/sessions/:id/pacing, производная сводка темпа.
func (h *SessionHandler) GetPacing(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	advice, err := h.service.GetPacingAdvice(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, advice)
}

// --- участники ---

type AddPlayerRequest struct {
	UserID      uuid.UUID         `json:"userId"`
	CharacterID *uuid.UUID        `json:"characterId"`
	Role        models.PlayerRole `json:"role"`
}

func (h *SessionHandler) AddPlayer(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req AddPlayerRequest
	if !bindJSON(c, &req) {
		return
	}
	player := models.SessionPlayer{
		UserID:      req.UserID,
		CharacterID: req.CharacterID,
		Role:        req.Role,
	}
	if err := h.service.AddPlayer(c.Request.Context(), userID, sessionID, &player); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, player)
}

func (h *SessionHandler) ListPlayers(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	players, err := h.service.ListPlayers(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if players == nil {
		players = []models.SessionPlayer{}
	}
	c.JSON(http.StatusOK, players)
}

func (h *SessionHandler) UpdatePlayer(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uuidParam(c, "playerId")
	if !ok {
		return
	}
	var upd models.SessionPlayerUpdate
	if !bindJSON(c, &upd) {
		return
	}
	player, err := h.service.UpdatePlayer(c.Request.Context(), userID, sessionID, playerID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, player)
}

func (h *SessionHandler) RemovePlayer(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	playerID, ok := uuidParam(c, "playerId")
	if !ok {
		return
	}
	if err := h.service.RemovePlayer(c.Request.Context(), userID, sessionID, playerID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
