package models

import "github.com/google/uuid"

// SuggestionRequest - запрос текстовой подсказки для поля сценария.
// ScenarioID опционален: с ним подсказка заземляется на контент сценария.
type SuggestionRequest struct {
	ScenarioID *uuid.UUID `json:"scenarioId"`
	Target     string     `json:"target"`
	Prompt     string     `json:"prompt"`
}

// Suggestion - сгенерированный текст. Ничего не сохраняется на сервере,
// клиент сам решает, подставлять ли текст в форму.
type Suggestion struct {
	Target string `json:"target"`
	Text   string `json:"text"`
	Model  string `json:"model"`
}
