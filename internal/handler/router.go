package handler

import (
	"net/http"

	"scenario-server/internal/auth"
	"scenario-server/internal/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router собирает все хендлеры сервиса и регистрирует маршруты.
type Router struct {
	scenarios   *ScenarioHandler
	characters  *CharacterHandler
	sessions    *SessionHandler
	transfer    *TransferHandler
	suggestions *SuggestionHandler
	stats       *StatsHandler
	verifier    *auth.Verifier
	sink        *metrics.Sink
	logger      *zap.Logger
}

func NewRouter(
	scenarios *ScenarioHandler,
	characters *CharacterHandler,
	sessions *SessionHandler,
	transfer *TransferHandler,
	suggestions *SuggestionHandler,
	stats *StatsHandler,
	verifier *auth.Verifier,
	sink *metrics.Sink,
	logger *zap.Logger,
) *Router {
	return &Router{
		scenarios:   scenarios,
		characters:  characters,
		sessions:    sessions,
		transfer:    transfer,
		suggestions: suggestions,
		stats:       stats,
		verifier:    verifier,
		sink:        sink,
		logger:      logger,
	}
}

// RegisterRoutes вешает все маршруты на engine. /api требует bearer-токен,
// /health и /internal/stats - нет.
func (r *Router) RegisterRoutes(router *gin.Engine) {
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	router.GET("/internal/stats", r.stats.GetStats)

	api := router.Group("/api")
	api.Use(SinkRecorder(r.sink))
	api.Use(AuthMiddleware(r.verifier, r.logger))

	scenarios := api.Group("/scenarios")
	{
		scenarios.POST("", r.scenarios.CreateScenario)
		scenarios.GET("", r.scenarios.ListScenarios)
		scenarios.GET("/:id", r.scenarios.GetScenario)
		scenarios.PATCH("/:id", r.scenarios.UpdateScenario)
		scenarios.DELETE("/:id", r.scenarios.DeleteScenario)

		scenarios.POST("/:id/regions/seed-defaults", r.scenarios.SeedDefaultRegions)
		scenarios.POST("/:id/regions", r.scenarios.CreateRegion)
		scenarios.GET("/:id/regions", r.scenarios.ListRegions)
		scenarios.GET("/:id/regions/:regionId", r.scenarios.GetRegion)
		scenarios.PATCH("/:id/regions/:regionId", r.scenarios.UpdateRegion)
		scenarios.DELETE("/:id/regions/:regionId", r.scenarios.DeleteRegion)

		scenarios.POST("/:id/npcs", r.scenarios.CreateNPC)
		scenarios.GET("/:id/npcs", r.scenarios.ListNPCs)
		scenarios.GET("/:id/npcs/:npcId", r.scenarios.GetNPC)
		scenarios.PATCH("/:id/npcs/:npcId", r.scenarios.UpdateNPC)
		scenarios.DELETE("/:id/npcs/:npcId", r.scenarios.DeleteNPC)

		scenarios.POST("/:id/quests", r.scenarios.CreateQuest)
		scenarios.GET("/:id/quests", r.scenarios.ListQuests)
		scenarios.GET("/:id/quests/:questId", r.scenarios.GetQuest)
		scenarios.PATCH("/:id/quests/:questId", r.scenarios.UpdateQuest)
		scenarios.DELETE("/:id/quests/:questId", r.scenarios.DeleteQuest)

		scenarios.POST("/:id/conditions", r.scenarios.CreateCondition)
		scenarios.GET("/:id/conditions", r.scenarios.ListConditions)
		scenarios.GET("/:id/conditions/:conditionId", r.scenarios.GetCondition)
		scenarios.PATCH("/:id/conditions/:conditionId", r.scenarios.UpdateCondition)
		scenarios.DELETE("/:id/conditions/:conditionId", r.scenarios.DeleteCondition)
	}

	characters := api.Group("/characters")
	{
		characters.POST("", r.characters.CreateCharacter)
		characters.GET("", r.characters.ListCharacters)
		characters.GET("/:id", r.characters.GetCharacter)
		characters.PATCH("/:id", r.characters.UpdateCharacter)
		characters.DELETE("/:id", r.characters.DeleteCharacter)
	}

	sessions := api.Group("/sessions")
	{
		sessions.POST("", r.sessions.CreateSession)
		sessions.GET("", r.sessions.ListSessions)
		sessions.GET("/:id", r.sessions.GetSession)
		sessions.PATCH("/:id", r.sessions.UpdateSession)
		sessions.DELETE("/:id", r.sessions.DeleteSession)
		sessions.GET("/:id/pacing", r.sessions.GetPacing)

		sessions.POST("/:id/players", r.sessions.AddPlayer)
		sessions.GET("/:id/players", r.sessions.ListPlayers)
		sessions.PATCH("/:id/players/:playerId", r.sessions.UpdatePlayer)
		sessions.DELETE("/:id/players/:playerId", r.sessions.RemovePlayer)

		sessions.POST("/:id/timeline", r.sessions.CreateTimelineEvent)
		sessions.GET("/:id/timeline", r.sessions.ListTimelineEvents)
		sessions.PATCH("/:id/timeline/:eventId", r.sessions.UpdateTimelineEvent)
		sessions.DELETE("/:id/timeline/:eventId", r.sessions.DeleteTimelineEvent)

		sessions.POST("/:id/nodes", r.sessions.CreateNode)
		sessions.GET("/:id/nodes", r.sessions.ListNodes)
		sessions.DELETE("/:id/nodes/:nodeId", r.sessions.DeleteNode)

		sessions.POST("/:id/connections", r.sessions.CreateConnection)
		sessions.GET("/:id/connections", r.sessions.ListConnections)
		sessions.DELETE("/:id/connections/:connectionId", r.sessions.DeleteConnection)
	}

	transfer := api.Group("/transfer")
	{
		transfer.GET("/export", r.transfer.Export)
		transfer.POST("/import", r.transfer.Import)
	}

	suggestions := api.Group("/suggestions")
	{
		suggestions.POST("/npc", r.suggestions.SuggestNPC)
		suggestions.POST("/event", r.suggestions.SuggestEvent)
		suggestions.POST("/search", r.suggestions.SuggestSearch)
	}
}
