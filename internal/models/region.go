package models

import (
	"time"

	"github.com/google/uuid"
)

// Region - регион внутри сценария. ThreatLevel и PoliticalStance влияют
// только на отображение у клиента, сервер их лишь валидирует.
type Region struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	ScenarioID         uuid.UUID       `json:"scenarioId" db:"scenario_id"`
	Name               string          `json:"name" db:"name"`
	Type               RegionType      `json:"type" db:"type"`
	Description        string          `json:"description" db:"description"`
	ControllingFaction string          `json:"controllingFaction" db:"controlling_faction"`
	Population         int             `json:"population" db:"population"`
	Resources          []string        `json:"resources" db:"resources"`
	ThreatLevel        int             `json:"threatLevel" db:"threat_level"`
	PoliticalStance    PoliticalStance `json:"politicalStance" db:"political_stance"`
	TradeRoutes        []string        `json:"tradeRoutes" db:"trade_routes"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

// RegionUpdate - частичное обновление региона.
type RegionUpdate struct {
	Name               *string          `json:"name"`
	Type               *RegionType      `json:"type"`
	Description        *string          `json:"description"`
	ControllingFaction *string          `json:"controllingFaction"`
	Population         *int             `json:"population"`
	Resources          *[]string        `json:"resources"`
	ThreatLevel        *int             `json:"threatLevel"`
	PoliticalStance    *PoliticalStance `json:"politicalStance"`
	TradeRoutes        *[]string        `json:"tradeRoutes"`
}
