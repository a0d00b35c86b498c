package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TimelineEvent - событие на таймлайне сессии. Position задает порядок,
// сервер отдает события отсортированными по нему.
type TimelineEvent struct {
	ID          uuid.UUID `json:"id" db:"id"`
	SessionID   uuid.UUID `json:"sessionId" db:"session_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Kind        string    `json:"kind" db:"kind"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type TimelineEventUpdate struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Kind        *string `json:"kind"`
	Position    *int    `json:"position"`
}

// Node - вершина графа сессии (чисто презентационная структура).
type Node struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	SessionID uuid.UUID       `json:"sessionId" db:"session_id"`
	Label     string          `json:"label" db:"label"`
	Kind      string          `json:"kind" db:"kind"`
	X         float64         `json:"x" db:"x"`
	Y         float64         `json:"y" db:"y"`
	Data      json.RawMessage `json:"data" db:"data"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// Connection - ребро графа сессии.
type Connection struct {
	ID        uuid.UUID `json:"id" db:"id"`
	SessionID uuid.UUID `json:"sessionId" db:"session_id"`
	FromNode  uuid.UUID `json:"fromNode" db:"from_node"`
	ToNode    uuid.UUID `json:"toNode" db:"to_node"`
	Label     string    `json:"label" db:"label"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
