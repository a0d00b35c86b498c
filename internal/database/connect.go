package database

import (
	"context"
	"fmt"
	"time"

	"scenario-server/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Подключения к внешним хранилищам с ретраями: при старте в compose
// база может подниматься дольше сервиса.

const (
	connectMaxRetries = 20
	connectRetryDelay = 3 * time.Second
)

// ConnectPostgres создает пул pgx и дожидается успешного ping.
func ConnectPostgres(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("unable to parse postgres config: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	poolConfig.MaxConnIdleTime = cfg.DBIdleTimeout

	var lastErr error
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
		cancel()
		if err != nil {
			lastErr = err
			logger.Warn("Postgres pool creation failed, retrying...",
				zap.Int("attempt", attempt), zap.Error(err))
			time.Sleep(connectRetryDelay)
			continue
		}

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err = pool.Ping(pingCtx)
		cancel()
		if err == nil {
			logger.Info("Connected to PostgreSQL", zap.Int("attempt", attempt))
			return pool, nil
		}

		pool.Close()
		lastErr = err
		logger.Warn("Postgres ping failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(connectRetryDelay)
	}
	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", connectMaxRetries, lastErr)
}

// ConnectRedis создает клиента Redis и дожидается успешного ping.
func ConnectRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}

	var lastErr error
	for attempt := 1; attempt <= connectMaxRetries; attempt++ {
		client := redis.NewClient(opts)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		_, err := client.Ping(pingCtx).Result()
		cancel()
		if err == nil {
			logger.Info("Connected to Redis", zap.Int("attempt", attempt))
			return client, nil
		}

		client.Close()
		lastErr = err
		logger.Warn("Redis ping failed, retrying...",
			zap.Int("attempt", attempt), zap.Error(err))
		time.Sleep(connectRetryDelay)
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", connectMaxRetries, lastErr)
}
