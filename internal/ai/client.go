package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://openrouter.ai/api/v1"

var suggestionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ai_suggestion_requests_total",
	Help: "Запросы к AI на подсказки, по исходу.",
}, []string{"outcome"})

// Client - клиент OpenRouter для текстовых подсказок. Генерирует короткие
// тексты под конкретное поле сценария, ничего не персистит.
type Client struct {
	client     *openai.Client
	modelName  string
	timeout    time.Duration
	maxRetries int
	logger     *zap.Logger
}

// Config - конфигурация AI клиента.
type Config struct {
	APIKey     string
	BaseURL    string
	ModelName  string
	Timeout    int
	MaxRetries int
}

// Системные промпты по целевым полям. Неизвестный target получает общий промпт.
var systemPrompts = map[string]string{
	"mainIdea":     "You help a game master write tabletop RPG scenarios. Propose a concise main idea for the scenario: the central conflict and what makes it interesting to play. Reply with the idea text only, no preamble.",
	"worldContext": "You help a game master write tabletop RPG scenarios. Write a short world context paragraph grounded in the provided scenario details. Reply with the paragraph only.",
	"npc":          "You help a game master write tabletop RPG scenarios. Propose a non-player character fitting the scenario: name, role, motivation, one secret. Reply with the description only.",
	"event":        "You help a game master write tabletop RPG scenarios. Propose an event or quest hook fitting the scenario: goal, obstacle, stakes. Reply with the hook only.",
	"search":       "You help a game master write tabletop RPG scenarios. The players are searching a location. Describe what they might find, grounded in the scenario details. Reply with the description only.",
	"region":       "You help a game master write tabletop RPG scenarios. Write a short evocative description for a region of the scenario world. Reply with the description only.",
}

const genericPrompt = "You help a game master write tabletop RPG scenarios. Write a short suggestion for the requested field, grounded in the provided scenario details. Reply with the suggestion text only."

// New создает клиента. API ключ обязателен, остальное имеет дефолты.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenRouter API key is not set")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "deepseek/deepseek-chat-v3-0324:free"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL

	return &Client{
		client:     openai.NewClientWithConfig(clientConfig),
		modelName:  cfg.ModelName,
		timeout:    time.Duration(cfg.Timeout) * time.Second,
		maxRetries: cfg.MaxRetries,
		logger:     logger.Named("AIClient"),
	}, nil
}

// Model возвращает имя используемой модели (уходит в ответ API).
func (c *Client) Model() string {
	return c.modelName
}

// Suggest генерирует текст подсказки для поля target. scenarioContext -
// уже собранная текстовая выжимка сценария, может быть пустой.
func (c *Client) Suggest(ctx context.Context, target, prompt, scenarioContext string) (string, error) {
	systemPrompt, ok := systemPrompts[target]
	if !ok {
		systemPrompt = genericPrompt
	}

	userPrompt := buildUserPrompt(target, prompt, trimToTokenBudget(scenarioContext, maxContextTokens))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	attempts := 0
	for attempts < c.maxRetries {
		attempts++

		req := openai.ChatCompletionRequest{
			Model: c.modelName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: 0.8,
			MaxTokens:   800,
			TopP:        0.95,
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			c.logger.Warn("AI request failed", zap.Error(err), zap.Int("attempt", attempts))
			if attempts >= c.maxRetries {
				suggestionRequests.WithLabelValues("error").Inc()
				return "", fmt.Errorf("AI request failed after %d attempts: %w", attempts, err)
			}
			time.Sleep(time.Duration(attempts) * time.Second)
			continue
		}

		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			c.logger.Warn("Empty AI response", zap.Int("attempt", attempts))
			if attempts >= c.maxRetries {
				suggestionRequests.WithLabelValues("empty").Inc()
				return "", errors.New("empty response from AI after retries")
			}
			time.Sleep(time.Duration(attempts) * time.Second)
			continue
		}

		suggestionRequests.WithLabelValues("ok").Inc()
		return strings.TrimSpace(resp.Choices[0].Message.Content), nil
	}

	suggestionRequests.WithLabelValues("error").Inc()
	return "", errors.New("no response from AI after retries")
}

func buildUserPrompt(target, prompt, scenarioContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Field: %s\n", target)
	if scenarioContext != "" {
		fmt.Fprintf(&b, "Scenario details:\n%s\n", scenarioContext)
	}
	if prompt != "" {
		fmt.Fprintf(&b, "Request: %s\n", prompt)
	}
	return b.String()
}
