package models

import (
	"time"

	"github.com/google/uuid"
)

// Session - игровая сессия мастера. Duration - накопленное время в минутах,
// сохраняется явно (таймер на клиенте, см. pacing).
type Session struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	UserID       uuid.UUID   `json:"userId" db:"user_id"`
	Name         string      `json:"name" db:"name"`
	CreatorMode  CreatorMode `json:"creatorMode" db:"creator_mode"`
	CurrentPhase int         `json:"currentPhase" db:"current_phase"`
	Duration     int         `json:"duration" db:"duration"`
	AIMode       AIMode      `json:"aiMode" db:"ai_mode"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}

type SessionUpdate struct {
	Name         *string      `json:"name"`
	CreatorMode  *CreatorMode `json:"creatorMode"`
	CurrentPhase *int         `json:"currentPhase"`
	Duration     *int         `json:"duration"`
	AIMode       *AIMode      `json:"aiMode"`
}

// SessionPlayer - участник сессии.
type SessionPlayer struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	SessionID    uuid.UUID  `json:"sessionId" db:"session_id"`
	UserID       uuid.UUID  `json:"userId" db:"user_id"`
	CharacterID  *uuid.UUID `json:"characterId" db:"character_id"`
	Role         PlayerRole `json:"role" db:"role"`
	IsOnline     bool       `json:"isOnline" db:"is_online"`
	JoinedAt     time.Time  `json:"joinedAt" db:"joined_at"`
	LastActiveAt time.Time  `json:"lastActiveAt" db:"last_active_at"`
}

type SessionPlayerUpdate struct {
	CharacterID *uuid.UUID  `json:"characterId"`
	Role        *PlayerRole `json:"role"`
	IsOnline    *bool       `json:"isOnline"`
}

// PacingAdvice - производная сводка темпа сессии, ничего не персистит.
type PacingAdvice struct {
	Phase           string `json:"phase"`
	PhaseIndex      int    `json:"phaseIndex"`
	ElapsedMinutes  int    `json:"elapsedMinutes"`
	ExpectedMinutes int    `json:"expectedMinutes"`
	Advice          string `json:"advice"`
}
