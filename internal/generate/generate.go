// Package generate runs one copy generation: build the prompt, ask the
// provider, split the reply into variants.
package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/bimmerbailey/copygen/internal/parser"
	"github.com/bimmerbailey/copygen/internal/prompt"
)

// Result is the outcome of a single generation.
type Result struct {
	// Type is the requested content type (empty for unknown types with a
	// custom prompt).
	Type prompt.ContentType `json:"type,omitempty" yaml:"type,omitempty"`

	// Content is the model reply, verbatim.
	Content string `json:"content" yaml:"content"`

	// Prompt is the user prompt that was sent.
	Prompt string `json:"prompt" yaml:"prompt"`

	// Variants are the numbered items parsed from Content. An empty slice
	// means the model produced no numbered lines.
	Variants []string `json:"variants" yaml:"variants"`
}

// Service generates marketing copy through an llm.Provider.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	provider llm.Provider
	opts     *llm.ChatOptions
	logger   *slog.Logger
}

// New creates a Service. opts may be nil to use provider defaults.
func New(provider llm.Provider, opts *llm.ChatOptions, logger *slog.Logger) (*Service, error) {
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Service{provider: provider, opts: opts, logger: logger}, nil
}

// Provider returns the backend the service talks to.
func (s *Service) Provider() llm.Provider { return s.provider }

// Generate builds the prompt for req, sends it in a single request and parses
// the reply. Validation failures are returned before any network call.
// Callers clamp req.Variations with prompt.ClampVariations beforehand.
func (s *Service) Generate(ctx context.Context, req prompt.Request) (*Result, error) {
	pair, err := prompt.Build(req)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("generating content",
		"type", req.Type,
		"variations", req.Variations,
		"custom_prompt", req.CustomPrompt != "",
		"provider", s.provider.Name())

	start := time.Now()
	resp, err := s.provider.Chat(ctx, pair.Messages(), s.opts)
	if err != nil {
		s.logger.Warn("generation failed", "type", req.Type, "provider", s.provider.Name(), "error", err)
		return nil, err
	}

	variants := parser.Parse(resp.Content)
	s.logger.Info("generated content",
		"type", req.Type,
		"requested", req.Variations,
		"variants", len(variants),
		"model", resp.Model,
		"tokens", resp.TokensTotal,
		"duration", time.Since(start))

	return &Result{
		Type:     req.Type,
		Content:  resp.Content,
		Prompt:   pair.User,
		Variants: variants,
	}, nil
}
