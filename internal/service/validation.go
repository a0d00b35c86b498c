package service

import (
	"fmt"
	"strings"

	"scenario-server/internal/models"
)

// Валидация всех сущностей идет через один набор правил, а не через
// копии логики в каждом обработчике. validator накапливает ошибки полей,
// чтобы клиент получил их все разом.

type validator struct {
	fields []models.FieldError
}

func (v *validator) addError(field, format string, args ...any) {
	v.fields = append(v.fields, models.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// text проверяет текстовое поле: обязательность и границы длины.
// maxLen <= 0 означает "без верхней границы".
func (v *validator) text(field, value string, required bool, minLen, maxLen int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			v.addError(field, "is required")
		}
		return
	}
	if minLen > 0 && len([]rune(trimmed)) < minLen {
		v.addError(field, "must be at least %d characters", minLen)
	}
	if maxLen > 0 && len([]rune(value)) > maxLen {
		v.addError(field, "must be at most %d characters", maxLen)
	}
}

// enum проверяет принадлежность значения закрытому набору вариантов.
func (v *validator) enum(field, value string, allowed []string) {
	if !models.ValidEnum(value, allowed) {
		v.addError(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
}

// intRange проверяет попадание числа в [min, max].
func (v *validator) intRange(field string, value, min, max int) {
	if value < min || value > max {
		v.addError(field, "must be between %d and %d", min, max)
	}
}

func (v *validator) nonNegative(field string, value int) {
	if value < 0 {
		v.addError(field, "must not be negative")
	}
}

// err возвращает nil либо *models.ValidationError со всеми накопленными ошибками.
func (v *validator) err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &models.ValidationError{Fields: v.fields}
}

func validateScenario(s *models.Scenario) error {
	v := &validator{}
	v.text("title", s.Title, true, 0, models.MaxTitleLength)
	v.text("mainIdea", s.MainIdea, true, models.MinMainIdeaLength, models.MaxLongTextLength)
	v.text("worldContext", s.WorldContext, false, 0, models.MaxLongTextLength)
	v.text("politicalSituation", s.PoliticalSituation, false, 0, models.MaxLongTextLength)
	v.enum("status", string(s.Status), models.ScenarioStatuses)
	return v.err()
}

func validateRegion(r *models.Region) error {
	v := &validator{}
	v.text("name", r.Name, true, 0, models.MaxTitleLength)
	v.enum("type", string(r.Type), models.RegionTypes)
	v.text("description", r.Description, false, 0, models.MaxLongTextLength)
	v.text("controllingFaction", r.ControllingFaction, false, 0, models.MaxTitleLength)
	v.nonNegative("population", r.Population)
	v.intRange("threatLevel", r.ThreatLevel, models.MinThreatLevel, models.MaxThreatLevel)
	v.enum("politicalStance", string(r.PoliticalStance), models.PoliticalStances)
	return v.err()
}

func validateNPC(n *models.ScenarioNPC) error {
	v := &validator{}
	v.text("name", n.Name, true, 0, models.MaxTitleLength)
	v.text("role", n.Role, false, 0, models.MaxTitleLength)
	v.text("description", n.Description, false, 0, models.MaxLongTextLength)
	v.text("location", n.Location, false, 0, models.MaxTitleLength)
	v.text("faction", n.Faction, false, 0, models.MaxTitleLength)
	v.enum("importance", string(n.Importance), models.NPCImportances)
	v.enum("status", string(n.Status), models.NPCStatuses)
	return v.err()
}

func validateQuest(q *models.ScenarioQuest) error {
	v := &validator{}
	v.text("title", q.Title, true, 0, models.MaxTitleLength)
	v.text("description", q.Description, false, 0, models.MaxLongTextLength)
	v.enum("status", string(q.Status), models.QuestStatuses)
	v.enum("priority", string(q.Priority), models.QuestPriorities)
	v.text("rewards", q.Rewards, false, 0, models.MaxLongTextLength)
	v.text("requirements", q.Requirements, false, 0, models.MaxLongTextLength)
	return v.err()
}

func validateCondition(c *models.EnvironmentalCondition) error {
	v := &validator{}
	v.text("name", c.Name, true, 0, models.MaxTitleLength)
	v.text("description", c.Description, false, 0, models.MaxLongTextLength)
	v.enum("severity", string(c.Severity), models.ConditionSeverities)
	v.text("duration", c.Duration, false, 0, models.MaxTitleLength)
	return v.err()
}

func validateCharacter(c *models.PlayerCharacter) error {
	v := &validator{}
	v.text("name", c.Name, true, 0, models.MaxTitleLength)
	v.text("class", c.Class, false, 0, models.MaxTitleLength)
	if c.Level < 1 {
		v.addError("level", "must be at least 1")
	}
	v.text("background", c.Background, false, 0, models.MaxLongTextLength)
	v.text("notes", c.Notes, false, 0, models.MaxLongTextLength)
	return v.err()
}

func validateSession(s *models.Session) error {
	v := &validator{}
	v.text("name", s.Name, true, 0, models.MaxTitleLength)
	v.enum("creatorMode", string(s.CreatorMode), models.CreatorModes)
	v.enum("aiMode", string(s.AIMode), models.AIModes)
	v.nonNegative("currentPhase", s.CurrentPhase)
	v.nonNegative("duration", s.Duration)
	return v.err()
}

func validateSessionPlayer(p *models.SessionPlayer) error {
	v := &validator{}
	v.enum("role", string(p.Role), models.PlayerRoles)
	return v.err()
}

func validateTimelineEvent(e *models.TimelineEvent) error {
	v := &validator{}
	v.text("title", e.Title, true, 0, models.MaxTitleLength)
	v.text("description", e.Description, false, 0, models.MaxLongTextLength)
	v.nonNegative("position", e.Position)
	return v.err()
}

func validateNode(n *models.Node) error {
	v := &validator{}
	v.text("label", n.Label, true, 0, models.MaxTitleLength)
	return v.err()
}
