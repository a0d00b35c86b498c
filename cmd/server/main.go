package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scenario-server/internal/ai"
	"scenario-server/internal/auth"
	"scenario-server/internal/cache"
	"scenario-server/internal/config"
	"scenario-server/internal/database"
	"scenario-server/internal/handler"
	"scenario-server/internal/metrics"
	"scenario-server/internal/repository"
	"scenario-server/internal/service"
	"scenario-server/migrations"
	"scenario-server/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized", zap.String("logLevel", cfg.LogLevel))

	// --- External connections ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgPool, err := database.ConnectPostgres(ctx, cfg, log)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()

	if err := database.RunMigrations(pgPool, migrations.FS, ".", log); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	redisClient, err := database.ConnectRedis(ctx, cfg, log)
	if err != nil {
		zap.L().Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// --- Dependency injection ---
	scenarioRepo := repository.NewPgScenarioRepository(log)
	regionRepo := repository.NewPgRegionRepository(log)
	npcRepo := repository.NewPgNPCRepository(log)
	questRepo := repository.NewPgQuestRepository(log)
	conditionRepo := repository.NewPgConditionRepository(log)
	characterRepo := repository.NewPgCharacterRepository(pgPool, log)
	sessionRepo := repository.NewPgSessionRepository(pgPool, log)
	playerRepo := repository.NewPgSessionPlayerRepository(pgPool, log)
	timelineRepo := repository.NewPgTimelineRepository(pgPool, log)

	listCache := cache.NewListCache(redisClient, cfg.CacheTTL, log)

	aiClient, err := ai.New(ai.Config{
		APIKey:     cfg.OpenRouterAPIKey,
		BaseURL:    cfg.AIBaseURL,
		ModelName:  cfg.AIModel,
		Timeout:    cfg.AITimeout,
		MaxRetries: cfg.AIMaxRetries,
	}, log)
	if err != nil {
		zap.L().Fatal("Failed to create AI client", zap.Error(err))
	}

	scenarioSvc := service.NewScenarioService(scenarioRepo, regionRepo, npcRepo, questRepo, conditionRepo, pgPool, listCache, log)
	characterSvc := service.NewCharacterService(characterRepo, sessionRepo, log)
	sessionSvc := service.NewSessionService(sessionRepo, playerRepo, timelineRepo, characterRepo, log)
	transferSvc := service.NewTransferService(scenarioRepo, regionRepo, pgPool, pgPool, listCache, log)
	suggestionSvc := service.NewSuggestionService(aiClient, scenarioRepo, regionRepo, pgPool, log)

	verifier := auth.NewVerifier([]byte(cfg.JWTSecret))
	sink := metrics.NewSink(cfg.StatsCapacity)

	router := handler.NewRouter(
		handler.NewScenarioHandler(scenarioSvc, log),
		handler.NewCharacterHandler(characterSvc, log),
		handler.NewSessionHandler(sessionSvc, log),
		handler.NewTransferHandler(transferSvc, log),
		handler.NewSuggestionHandler(suggestionSvc, log),
		handler.NewStatsHandler(sink),
		verifier,
		sink,
		log,
	)

	// --- HTTP server (gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.RedirectTrailingSlash = true
	engine.Use(handler.RequestLogger(log))
	engine.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(cors.New(corsConfig))

	router.RegisterRoutes(engine)

	// Prometheus middleware вешается после регистрации роутов
	p := ginprometheus.NewPrometheus("gin")
	p.Use(engine)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.Port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
