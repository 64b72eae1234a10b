package llm

import (
	"context"
	"errors"

	"github.com/bimmerbailey/copygen/internal/llm/ollama"
)

// ollamaProviderAdapter adapts ollama.Provider to the Provider interface.
// This adapter is necessary because the ollama package defines its own types
// to avoid import cycles.
type ollamaProviderAdapter struct {
	provider *ollama.Provider
}

// Chat sends messages and returns a complete response.
func (a *ollamaProviderAdapter) Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error) {
	ollamaMessages := make([]ollama.Message, len(messages))
	for i, msg := range messages {
		ollamaMessages[i] = ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	var ollamaOpts *ollama.ChatOptions
	if opts != nil {
		ollamaOpts = &ollama.ChatOptions{
			Model:       opts.Model,
			Temperature: opts.Temperature,
			MaxTokens:   opts.MaxTokens,
		}
	}

	resp, err := a.provider.Chat(ctx, ollamaMessages, ollamaOpts)
	if err != nil {
		return nil, wrapOllamaError(err)
	}

	return &Response{
		Content:      resp.Content,
		Model:        resp.Model,
		TokensPrompt: resp.TokensPrompt,
		TokensTotal:  resp.TokensTotal,
	}, nil
}

// Heartbeat checks if the Ollama server is reachable.
func (a *ollamaProviderAdapter) Heartbeat(ctx context.Context) error {
	if err := a.provider.Heartbeat(ctx); err != nil {
		return errors.Join(ErrProviderUnavailable, err)
	}
	return nil
}

func (a *ollamaProviderAdapter) Name() string { return "ollama" }

func wrapOllamaError(err error) error {
	var se *ollama.StatusError
	if errors.As(err, &se) {
		return &UpstreamError{Provider: "ollama", StatusCode: se.StatusCode, Body: se.Message}
	}
	return &HTTPError{Provider: "ollama", Err: err}
}
