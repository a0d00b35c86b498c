package handler

import (
	"net/http"

	"scenario-server/internal/metrics"

	"github.com/gin-gonic/gin"
)

// StatsHandler отдает сводку кольцевого буфера запросов:
// GET /internal/stats. Эндпоинт вне /api и не требует пользовательского токена.
type StatsHandler struct {
	sink *metrics.Sink
}

func NewStatsHandler(sink *metrics.Sink) *StatsHandler {
	return &StatsHandler{sink: sink}
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.sink.Summarize())
}
