package handler

import (
	"encoding/json"
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Таймлайн и граф узлов сессии:
// /api/sessions/:id/timeline[/:eventId]
// /api/sessions/:id/nodes[/:nodeId]
// /api/sessions/:id/connections[/:connectionId]

type CreateTimelineEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Position    int    `json:"position"`
}

func (h *SessionHandler) CreateTimelineEvent(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateTimelineEventRequest
	if !bindJSON(c, &req) {
		return
	}
	event := models.TimelineEvent{
		Title:       req.Title,
		Description: req.Description,
		Kind:        req.Kind,
		Position:    req.Position,
	}
	if err := h.service.CreateTimelineEvent(c.Request.Context(), userID, sessionID, &event); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *SessionHandler) ListTimelineEvents(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	events, err := h.service.ListTimelineEvents(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if events == nil {
		events = []models.TimelineEvent{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *SessionHandler) UpdateTimelineEvent(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	var upd models.TimelineEventUpdate
	if !bindJSON(c, &upd) {
		return
	}
	event, err := h.service.UpdateTimelineEvent(c.Request.Context(), userID, sessionID, eventID, upd)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *SessionHandler) DeleteTimelineEvent(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	eventID, ok := uuidParam(c, "eventId")
	if !ok {
		return
	}
	if err := h.service.DeleteTimelineEvent(c.Request.Context(), userID, sessionID, eventID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- узлы ---

type CreateNodeRequest struct {
	Label string          `json:"label"`
	Kind  string          `json:"kind"`
	X     float64         `json:"x"`
	Y     float64         `json:"y"`
	Data  json.RawMessage `json:"data"`
}

func (h *SessionHandler) CreateNode(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateNodeRequest
	if !bindJSON(c, &req) {
		return
	}
	node := models.Node{
		Label: req.Label,
		Kind:  req.Kind,
		X:     req.X,
		Y:     req.Y,
		Data:  req.Data,
	}
	if err := h.service.CreateNode(c.Request.Context(), userID, sessionID, &node); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, node)
}

func (h *SessionHandler) ListNodes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	nodes, err := h.service.ListNodes(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if nodes == nil {
		nodes = []models.Node{}
	}
	c.JSON(http.StatusOK, nodes)
}

func (h *SessionHandler) DeleteNode(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	nodeID, ok := uuidParam(c, "nodeId")
	if !ok {
		return
	}
	if err := h.service.DeleteNode(c.Request.Context(), userID, sessionID, nodeID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- связи ---

type CreateConnectionRequest struct {
	FromNode uuid.UUID `json:"fromNode"`
	ToNode   uuid.UUID `json:"toNode"`
	Label    string    `json:"label"`
}

func (h *SessionHandler) CreateConnection(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req CreateConnectionRequest
	if !bindJSON(c, &req) {
		return
	}
	conn := models.Connection{
		FromNode: req.FromNode,
		ToNode:   req.ToNode,
		Label:    req.Label,
	}
	if err := h.service.CreateConnection(c.Request.Context(), userID, sessionID, &conn); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conn)
}

func (h *SessionHandler) ListConnections(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	connections, err := h.service.ListConnections(c.Request.Context(), userID, sessionID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if connections == nil {
		connections = []models.Connection{}
	}
	c.JSON(http.StatusOK, connections)
}

func (h *SessionHandler) DeleteConnection(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	connectionID, ok := uuidParam(c, "connectionId")
	if !ok {
		return
	}
	if err := h.service.DeleteConnection(c.Request.Context(), userID, sessionID, connectionID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
