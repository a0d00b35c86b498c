package handler

import (
	"net/http"
	"strings"
	"time"

	"scenario-server/internal/auth"
	"scenario-server/internal/metrics"
	"scenario-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMiddleware проверяет bearer-токен и кладет user_id в контекст gin.
func AuthMiddleware(verifier *auth.Verifier, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing", zap.String("path", c.Request.URL.Path))
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Invalid Authorization header format")
			handleServiceError(c, models.ErrTokenInvalid)
			return
		}

		userID, err := verifier.VerifyToken(parts[1])
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			handleServiceError(c, err)
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// RequestLogger логирует запросы через zap. /health и /metrics не логируются,
// чтобы не забивать лог пробами.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if path == "/health" || path == "/metrics" {
			c.Next()
			return
		}

		c.Next()

		latency := time.Since(start)
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			path = path + "?" + rawQuery
		}

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
			c.Header("X-Request-ID", requestID)
		}
		fields = append(fields, zap.String("request_id", requestID))

		if len(c.Errors) > 0 {
			for _, ginErr := range c.Errors.ByType(gin.ErrorTypeAny) {
				logger.Error("Request error", append(fields, zap.Error(ginErr.Err))...)
			}
			return
		}

		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("Server error", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("Client error", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}

// SinkRecorder пишет каждый обработанный запрос в кольцевой буфер.
func SinkRecorder(sink *metrics.Sink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		sink.Record(metrics.Sample{
			Method:   c.Request.Method,
			Path:     c.FullPath(),
			Status:   c.Writer.Status(),
			Latency:  time.Since(start),
			Observed: start,
		})
	}
}
