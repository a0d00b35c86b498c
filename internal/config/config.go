package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config - конфигурация scenario-server.
type Config struct {
	// Настройки сервера
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORS
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	// Настройки PostgreSQL
	DBHost        string        `envconfig:"DB_HOST" required:"true"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" required:"true"`
	DBName        string        `envconfig:"DB_NAME" required:"true"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_MINUTES" default:"5m"`
	// Секретное поле БЕЗ envconfig тега
	DBPassword string

	// Настройки Redis
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL      time.Duration `envconfig:"CACHE_TTL" default:"5m"`

	// Метрики
	StatsCapacity int `envconfig:"STATS_CAPACITY" default:"1000"`

	// AI (OpenRouter)
	AIBaseURL    string `envconfig:"AI_BASE_URL" default:"https://openrouter.ai/api/v1"`
	AIModel      string `envconfig:"AI_MODEL" default:"deepseek/deepseek-chat-v3-0324:free"`
	AITimeout    int    `envconfig:"AI_TIMEOUT_SECONDS" default:"60"`
	AIMaxRetries int    `envconfig:"AI_MAX_RETRIES" default:"3"`
	// Секретное поле БЕЗ envconfig тега
	OpenRouterAPIKey string

	// JWT (проверка токена пользователя в middleware)
	// Секретное поле БЕЗ envconfig тега
	JWTSecret string
}

// GetDSN возвращает строку подключения (DSN) для PostgreSQL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// LoadConfig загружает конфигурацию из .env (если есть), переменных окружения
// и Docker-секретов.
func LoadConfig(envFiles ...string) (*Config, error) {
	// .env опционален: в контейнере все приходит из окружения
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	var loadErr error
	cfg.DBPassword, loadErr = readSecret("db_password", "DB_PASSWORD")
	if loadErr != nil {
		return nil, loadErr
	}
	cfg.JWTSecret, loadErr = readSecret("jwt_secret", "JWT_SECRET")
	if loadErr != nil {
		return nil, loadErr
	}
	cfg.OpenRouterAPIKey, loadErr = readSecret("openrouter_api_key", "OPENROUTER_API_KEY")
	if loadErr != nil {
		return nil, loadErr
	}

	return &cfg, nil
}
