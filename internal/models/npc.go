package models

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioNPC - неигровой персонаж сценария.
type ScenarioNPC struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	ScenarioID  uuid.UUID     `json:"scenarioId" db:"scenario_id"`
	Name        string        `json:"name" db:"name"`
	Role        string        `json:"role" db:"role"`
	Description string        `json:"description" db:"description"`
	Location    string        `json:"location" db:"location"`
	Faction     string        `json:"faction" db:"faction"`
	Importance  NPCImportance `json:"importance" db:"importance"`
	Status      NPCStatus     `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

type ScenarioNPCUpdate struct {
	Name        *string        `json:"name"`
	Role        *string        `json:"role"`
	Description *string        `json:"description"`
	Location    *string        `json:"location"`
	Faction     *string        `json:"faction"`
	Importance  *NPCImportance `json:"importance"`
	Status      *NPCStatus     `json:"status"`
}
