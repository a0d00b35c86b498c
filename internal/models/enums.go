package models

// Закрытые наборы вариантов для перечислимых полей.
// Валидация идет централизованно через service (см. internal/service/validation.go),
// компоненты не должны заново объявлять эти списки.

type ScenarioStatus string

const (
	ScenarioStatusDraft     ScenarioStatus = "draft"
	ScenarioStatusActive    ScenarioStatus = "active"
	ScenarioStatusCompleted ScenarioStatus = "completed"
	ScenarioStatusArchived  ScenarioStatus = "archived"
)

var ScenarioStatuses = []string{
	string(ScenarioStatusDraft), string(ScenarioStatusActive),
	string(ScenarioStatusCompleted), string(ScenarioStatusArchived),
}

type RegionType string

const (
	RegionTypeCity       RegionType = "city"
	RegionTypeSettlement RegionType = "settlement"
	RegionTypeWasteland  RegionType = "wasteland"
	RegionTypeFortress   RegionType = "fortress"
	RegionTypeTradeHub   RegionType = "trade_hub"
	RegionTypeIndustrial RegionType = "industrial"
)

var RegionTypes = []string{
	string(RegionTypeCity), string(RegionTypeSettlement), string(RegionTypeWasteland),
	string(RegionTypeFortress), string(RegionTypeTradeHub), string(RegionTypeIndustrial),
}

type PoliticalStance string

const (
	StanceHostile  PoliticalStance = "hostile"
	StanceNeutral  PoliticalStance = "neutral"
	StanceFriendly PoliticalStance = "friendly"
	StanceAllied   PoliticalStance = "allied"
)

var PoliticalStances = []string{
	string(StanceHostile), string(StanceNeutral), string(StanceFriendly), string(StanceAllied),
}

type NPCImportance string

const (
	ImportanceMinor    NPCImportance = "minor"
	ImportanceMajor    NPCImportance = "major"
	ImportanceCritical NPCImportance = "critical"
)

var NPCImportances = []string{
	string(ImportanceMinor), string(ImportanceMajor), string(ImportanceCritical),
}

type NPCStatus string

const (
	NPCStatusAlive   NPCStatus = "alive"
	NPCStatusDead    NPCStatus = "dead"
	NPCStatusMissing NPCStatus = "missing"
	NPCStatusUnknown NPCStatus = "unknown"
)

var NPCStatuses = []string{
	string(NPCStatusAlive), string(NPCStatusDead), string(NPCStatusMissing), string(NPCStatusUnknown),
}

type QuestStatus string

const (
	QuestStatusNotStarted QuestStatus = "not_started"
	QuestStatusActive     QuestStatus = "active"
	QuestStatusCompleted  QuestStatus = "completed"
	QuestStatusFailed     QuestStatus = "failed"
)

var QuestStatuses = []string{
	string(QuestStatusNotStarted), string(QuestStatusActive),
	string(QuestStatusCompleted), string(QuestStatusFailed),
}

type QuestPriority string

const (
	PriorityLow      QuestPriority = "low"
	PriorityMedium   QuestPriority = "medium"
	PriorityHigh     QuestPriority = "high"
	PriorityCritical QuestPriority = "critical"
)

var QuestPriorities = []string{
	string(PriorityLow), string(PriorityMedium), string(PriorityHigh), string(PriorityCritical),
}

type ConditionSeverity string

const (
	SeverityMild     ConditionSeverity = "mild"
	SeverityModerate ConditionSeverity = "moderate"
	SeveritySevere   ConditionSeverity = "severe"
	SeverityExtreme  ConditionSeverity = "extreme"
)

var ConditionSeverities = []string{
	string(SeverityMild), string(SeverityModerate), string(SeveritySevere), string(SeverityExtreme),
}

type CreatorMode string

const (
	CreatorModeRoad CreatorMode = "road"
	CreatorModeCity CreatorMode = "city"
)

var CreatorModes = []string{string(CreatorModeRoad), string(CreatorModeCity)}

type AIMode string

const (
	AIModeOff    AIMode = "off"
	AIModeAssist AIMode = "assist"
	AIModeFull   AIMode = "full"
)

var AIModes = []string{string(AIModeOff), string(AIModeAssist), string(AIModeFull)}

type PlayerRole string

const (
	PlayerRolePlayer   PlayerRole = "player"
	PlayerRoleCoGM     PlayerRole = "co_gm"
	PlayerRoleObserver PlayerRole = "observer"
)

var PlayerRoles = []string{
	string(PlayerRolePlayer), string(PlayerRoleCoGM), string(PlayerRoleObserver),
}

// Границы threat level региона.
const (
	MinThreatLevel = 1
	MaxThreatLevel = 5
)

// Лимиты на размер текстовых полей.
const (
	MaxTitleLength    = 200
	MaxLongTextLength = 10000
	MinMainIdeaLength = 10
)

// oneOf проверяет принадлежность значения закрытому набору вариантов.
func oneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}

// ValidEnum сообщает, входит ли value в закрытый набор allowed.
// Пустая строка никогда не валидна: отсутствие значения обрабатывается
// отдельно (required либо подстановка дефолта).
func ValidEnum(value string, allowed []string) bool {
	if value == "" {
		return false
	}
	return oneOf(value, allowed)
}
