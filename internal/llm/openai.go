package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// chatCompletionProvider talks to any endpoint speaking the OpenAI chat
// completions protocol. The openai and azure backends differ only in the
// request options they are built with.
type chatCompletionProvider struct {
	name   string
	model  string
	client openai.Client
	logger *slog.Logger
}

func newChatCompletionProvider(name, model string, timeout time.Duration, opts []option.RequestOption, logger *slog.Logger) *chatCompletionProvider {
	// One attempt per request; callers decide whether to try again.
	opts = append(opts, option.WithMaxRetries(0))
	if timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(timeout))
	}

	return &chatCompletionProvider{
		name:   name,
		model:  model,
		client: openai.NewClient(opts...),
		logger: logger,
	}
}

func (p *chatCompletionProvider) Name() string { return p.name }

// Chat sends one chat completion request and returns the first choice verbatim.
func (p *chatCompletionProvider) Chat(ctx context.Context, messages []Message, opts *ChatOptions) (*Response, error) {
	if len(messages) == 0 {
		return nil, errors.New("messages cannot be empty")
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: convertMessages(messages),
	}
	if opts != nil {
		if opts.Model != "" {
			params.Model = openai.ChatModel(opts.Model)
		}
		if opts.MaxTokens > 0 {
			params.MaxTokens = openai.Int(int64(opts.MaxTokens))
		}
		params.Temperature = openai.Float(float64(opts.Temperature))
	}

	p.logger.Debug("sending chat request", "provider", p.name, "model", params.Model, "messages", len(messages))

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, p.wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices from %s", ErrInvalidResponse, p.name)
	}

	p.logger.Debug("chat request completed",
		"provider", p.name,
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"total_tokens", resp.Usage.TotalTokens)

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		Model:        resp.Model,
		TokensPrompt: int(resp.Usage.PromptTokens),
		TokensTotal:  int(resp.Usage.TotalTokens),
	}, nil
}

// Heartbeat lists models, which every compatible endpoint serves cheaply.
func (p *chatCompletionProvider) Heartbeat(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	return nil
}

// wrapError converts SDK errors to UpstreamError (non-2xx answer) or
// HTTPError (no answer at all).
func (p *chatCompletionProvider) wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		body := apiErr.RawJSON()
		if body == "" {
			body = apiErr.Error()
		}
		p.logger.Error("chat request rejected", "provider", p.name, "status", apiErr.StatusCode, "body", body)
		return &UpstreamError{Provider: p.name, StatusCode: apiErr.StatusCode, Body: body}
	}

	p.logger.Error("chat request failed", "provider", p.name, "error", err)
	return &HTTPError{Provider: p.name, Err: err}
}

func convertMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch msg.Role {
		case "system":
			result[i] = openai.SystemMessage(msg.Content)
		case "assistant":
			result[i] = openai.ChatCompletionMessageParamOfAssistant(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}
	return result
}
