package models

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioQuest - квест внутри сценария.
type ScenarioQuest struct {
	ID           uuid.UUID     `json:"id" db:"id"`
	ScenarioID   uuid.UUID     `json:"scenarioId" db:"scenario_id"`
	Title        string        `json:"title" db:"title"`
	Description  string        `json:"description" db:"description"`
	Status       QuestStatus   `json:"status" db:"status"`
	Priority     QuestPriority `json:"priority" db:"priority"`
	Rewards      string        `json:"rewards" db:"rewards"`
	Requirements string        `json:"requirements" db:"requirements"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

type ScenarioQuestUpdate struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Status       *QuestStatus   `json:"status"`
	Priority     *QuestPriority `json:"priority"`
	Rewards      *string        `json:"rewards"`
	Requirements *string        `json:"requirements"`
}
