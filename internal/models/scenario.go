package models

import (
	"time"

	"github.com/google/uuid"
)

// Scenario - корень дерева контента: к нему привязаны регионы, NPC,
// квесты и условия окружения.
type Scenario struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	UserID             uuid.UUID      `json:"userId" db:"user_id"`
	Title              string         `json:"title" db:"title"`
	MainIdea           string         `json:"mainIdea" db:"main_idea"`
	WorldContext       string         `json:"worldContext" db:"world_context"`
	PoliticalSituation string         `json:"politicalSituation" db:"political_situation"`
	KeyThemes          []string       `json:"keyThemes" db:"key_themes"` // nil сериализуется как null
	Status             ScenarioStatus `json:"status" db:"status"`
	CreatedAt          time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time      `json:"updatedAt" db:"updated_at"`
}

// ScenarioUpdate - частичное обновление: nil-поля не трогаются.
type ScenarioUpdate struct {
	Title              *string         `json:"title"`
	MainIdea           *string         `json:"mainIdea"`
	WorldContext       *string         `json:"worldContext"`
	PoliticalSituation *string         `json:"politicalSituation"`
	KeyThemes          *[]string       `json:"keyThemes"`
	Status             *ScenarioStatus `json:"status"`
}
