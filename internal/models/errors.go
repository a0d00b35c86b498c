package models

import (
	"errors"
	"fmt"
	"strings"
)

// Application-wide standard errors
var (
	// Common Resource/DB Errors
	ErrNotFound          = errors.New("resource not found") // General not found
	ErrScenarioNotFound  = errors.New("scenario not found")
	ErrRegionNotFound    = errors.New("region not found")
	ErrNPCNotFound       = errors.New("npc not found")
	ErrQuestNotFound     = errors.New("quest not found")
	ErrConditionNotFound = errors.New("environmental condition not found")
	ErrCharacterNotFound = errors.New("character not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrPlayerNotFound    = errors.New("session player not found")
	ErrEventNotFound     = errors.New("timeline event not found")
	ErrNodeNotFound      = errors.New("node not found")

	// Auth Errors
	ErrUnauthorized   = errors.New("unauthorized") // Authentication required or failed
	ErrForbidden      = errors.New("forbidden")    // Authenticated, but lacks permission
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// Suggestion Errors
	ErrSuggestionFailed = errors.New("suggestion generation failed")

	// Import/Export Errors
	ErrWorkbookMalformed = errors.New("workbook is malformed")

	// General Request/Server Errors
	ErrInternalServer = errors.New("internal server error")
	ErrBadRequest     = errors.New("bad request")
	ErrInvalidInput   = errors.New("invalid input data")
)

// Коды ошибок для клиента (стабильная часть контракта, в отличие от Message).
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION_FAILED"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeUpstream     = "UPSTREAM_FAILED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// FieldError описывает одну ошибку валидации конкретного поля.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError агрегирует все ошибки валидации одного payload,
// чтобы клиент мог показать их построчно рядом с полями формы.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Messages возвращает ошибки полей в виде плоского списка строк для details.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.String())
	}
	return msgs
}

// AsValidationError - хелпер для errors.As без локальной переменной на месте вызова.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
