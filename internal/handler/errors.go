package handler

import (
	"errors"
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError преобразует ошибку сервисного слоя в HTTP-ответ.
// Единая точка маппинга: хендлеры не выбирают статусы сами.
func handleServiceError(c *gin.Context, err error) {
	if verr, ok := models.AsValidationError(err); ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeValidation,
			Message: "Validation failed",
			Details: verr.Messages(),
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrScenarioNotFound),
		errors.Is(err, models.ErrRegionNotFound),
		errors.Is(err, models.ErrNPCNotFound),
		errors.Is(err, models.ErrQuestNotFound),
		errors.Is(err, models.ErrConditionNotFound),
		errors.Is(err, models.ErrCharacterNotFound),
		errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrPlayerNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrNodeNotFound),
		errors.Is(err, models.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, models.ErrorResponse{
			Code:    models.ErrCodeNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, models.ErrTokenExpired):
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
			Code:    models.ErrCodeTokenExpired,
			Message: "Token has expired",
		})
	case errors.Is(err, models.ErrTokenInvalid),
		errors.Is(err, models.ErrTokenMalformed),
		errors.Is(err, models.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
			Code:    models.ErrCodeTokenInvalid,
			Message: "Invalid or missing token",
		})
	case errors.Is(err, models.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
			Code:    models.ErrCodeForbidden,
			Message: "Forbidden",
		})
	case errors.Is(err, models.ErrSuggestionFailed):
		c.AbortWithStatusJSON(http.StatusBadGateway, models.ErrorResponse{
			Code:    models.ErrCodeUpstream,
			Message: "Suggestion generation failed, try again later",
		})
	case errors.Is(err, models.ErrWorkbookMalformed):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, models.ErrBadRequest), errors.Is(err, models.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: err.Error(),
		})
	default:
		zap.L().Error("Unhandled service error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Code:    models.ErrCodeInternal,
			Message: "Internal server error",
		})
	}
}
