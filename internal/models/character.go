package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PlayerCharacter - персонаж игрока. Stats/Skills/Equipment хранятся как
// непрозрачные JSON-блобы: сервер их не интерпретирует.
type PlayerCharacter struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	UserID     uuid.UUID       `json:"userId" db:"user_id"`
	SessionID  *uuid.UUID      `json:"sessionId" db:"session_id"`
	Name       string          `json:"name" db:"name"`
	Class      string          `json:"class" db:"class"`
	Level      int             `json:"level" db:"level"`
	Background string          `json:"background" db:"background"`
	Stats      json.RawMessage `json:"stats" db:"stats"`
	Skills     json.RawMessage `json:"skills" db:"skills"`
	Equipment  json.RawMessage `json:"equipment" db:"equipment"`
	Notes      string          `json:"notes" db:"notes"`
	IsActive   bool            `json:"isActive" db:"is_active"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" db:"updated_at"`
}

type PlayerCharacterUpdate struct {
	Name       *string          `json:"name"`
	Class      *string          `json:"class"`
	Level      *int             `json:"level"`
	Background *string          `json:"background"`
	Stats      *json.RawMessage `json:"stats"`
	Skills     *json.RawMessage `json:"skills"`
	Equipment  *json.RawMessage `json:"equipment"`
	Notes      *string          `json:"notes"`
	IsActive   *bool            `json:"isActive"`
	SessionID  *uuid.UUID       `json:"sessionId"`
}
