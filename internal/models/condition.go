package models

import (
	"time"

	"github.com/google/uuid"
)

// EnvironmentalCondition - погодное/средовое условие, затрагивающее
// набор регионов сценария.
type EnvironmentalCondition struct {
	ID              uuid.UUID         `json:"id" db:"id"`
	ScenarioID      uuid.UUID         `json:"scenarioId" db:"scenario_id"`
	Name            string            `json:"name" db:"name"`
	Description     string            `json:"description" db:"description"`
	Severity        ConditionSeverity `json:"severity" db:"severity"`
	AffectedRegions []uuid.UUID       `json:"affectedRegions" db:"affected_regions"`
	Duration        string            `json:"duration" db:"duration"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

type EnvironmentalConditionUpdate struct {
	Name            *string            `json:"name"`
	Description     *string            `json:"description"`
	Severity        *ConditionSeverity `json:"severity"`
	AffectedRegions *[]uuid.UUID       `json:"affectedRegions"`
	Duration        *string            `json:"duration"`
}
