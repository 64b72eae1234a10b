package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bimmerbailey/copygen/internal/config"
)

// Provider defines the interface for chat-completion backends.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Chat sends messages in a single request and returns the first
	// completion. It never retries.
	Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error)

	// Heartbeat checks if the provider is reachable and healthy.
	Heartbeat(ctx context.Context) error

	// Name identifies the backend ("openai", "azure", "ollama").
	Name() string
}

// Message represents a single message in a conversation.
type Message struct {
	// Role identifies the message sender: "system", "user", or "assistant"
	Role string

	// Content is the message text
	Content string
}

// ChatOptions configures a chat request.
// All fields are optional; nil opts uses provider defaults.
type ChatOptions struct {
	// Model overrides the configured model or deployment
	Model string

	// Temperature controls randomness (0.0 = deterministic)
	Temperature float32

	// MaxTokens limits the response length (0 = provider default)
	MaxTokens int
}

// Response represents a complete LLM response.
type Response struct {
	// Content is the generated text, unmodified
	Content string

	// Model is the name of the model that generated the response
	Model string

	// TokensPrompt is the number of tokens in the prompt
	TokensPrompt int

	// TokensTotal is the total number of tokens (prompt + completion)
	TokensTotal int
}

var (
	// ErrInvalidResponse indicates the provider answered 2xx without a usable choice
	ErrInvalidResponse = errors.New("provider returned invalid response")

	// ErrProviderUnavailable indicates a heartbeat failed
	ErrProviderUnavailable = errors.New("llm provider is not reachable")
)

// NewProvider creates the provider selected by cfg.LLM.Provider.
// Missing settings are reported as a *ConfigError before any network call.
func NewProvider(cfg *config.Config, logger *slog.Logger) (Provider, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	providerType := strings.ToLower(cfg.LLM.Provider)
	logger.Debug("creating llm provider", "type", providerType)

	switch providerType {
	case "openai":
		return newOpenAIProvider(cfg, logger)
	case "azure":
		return newAzureProvider(cfg, logger)
	case "ollama":
		return newOllamaProvider(cfg, logger)
	case "":
		return nil, &ConfigError{Key: "llm.provider"}
	default:
		return nil, fmt.Errorf("unknown llm provider: %s (supported: openai, azure, ollama)", providerType)
	}
}

// DefaultChatOptions returns the per-request options derived from cfg.
func DefaultChatOptions(cfg *config.Config) *ChatOptions {
	return &ChatOptions{
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}
}
