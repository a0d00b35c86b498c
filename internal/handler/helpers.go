package handler

import (
	"net/http"

	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDFromContext достает user_id, положенный AuthMiddleware.
// Возвращает false (и пишет 401), если middleware не отработал.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		handleServiceError(c, models.ErrUnauthorized)
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		handleServiceError(c, models.ErrUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

// uuidParam парсит path-параметр как UUID, при ошибке пишет 400.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: "Invalid " + name + " parameter, expected UUID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func errBadUpload(message string) models.ErrorResponse {
	return models.ErrorResponse{
		Code:    models.ErrCodeBadRequest,
		Message: message,
	}
}

// bindJSON разбирает тело запроса, при ошибке пишет 400.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeBadRequest,
			Message: "Invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
