package llm

import (
	"log/slog"
	"strings"

	"github.com/bimmerbailey/copygen/internal/config"
	"github.com/bimmerbailey/copygen/internal/llm/ollama"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"
)

// requireKey returns a *ConfigError for key when value is blank.
func requireKey(value, key string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}
	e := &ConfigError{Key: key}
	if env := config.LegacyEnv(key); env != "" {
		e.Env = []string{env}
	}
	return e
}

// newOpenAIProvider creates a provider for an OpenAI-compatible gateway
// authenticated with a bearer token.
func newOpenAIProvider(cfg *config.Config, logger *slog.Logger) (Provider, error) {
	c := cfg.LLM.OpenAI
	for _, check := range []struct{ value, key string }{
		{c.BaseURL, "llm.openai.base_url"},
		{c.APIKey, "llm.openai.api_key"},
		{c.Model, "llm.openai.model"},
	} {
		if err := requireKey(check.value, check.key); err != nil {
			return nil, err
		}
	}

	baseURL := strings.TrimRight(c.BaseURL, "/") + "/"
	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(c.APIKey),
	}

	logger.Info("initialized openai provider",
		"model", c.Model,
		"base_url", baseURL,
	)

	return newChatCompletionProvider("openai", c.Model, cfg.LLM.Timeout, opts, logger), nil
}

// newAzureProvider creates a provider for an Azure OpenAI deployment. The
// deployment name travels as the model and is routed into the URL path.
func newAzureProvider(cfg *config.Config, logger *slog.Logger) (Provider, error) {
	c := cfg.LLM.Azure
	for _, check := range []struct{ value, key string }{
		{c.Endpoint, "llm.azure.endpoint"},
		{c.APIKey, "llm.azure.api_key"},
		{c.Deployment, "llm.azure.deployment"},
		{c.APIVersion, "llm.azure.api_version"},
	} {
		if err := requireKey(check.value, check.key); err != nil {
			return nil, err
		}
	}

	opts := []option.RequestOption{
		azure.WithEndpoint(strings.TrimRight(c.Endpoint, "/"), c.APIVersion),
		azure.WithAPIKey(c.APIKey),
	}

	logger.Info("initialized azure provider",
		"endpoint", c.Endpoint,
		"deployment", c.Deployment,
		"api_version", c.APIVersion,
	)

	return newChatCompletionProvider("azure", c.Deployment, cfg.LLM.Timeout, opts, logger), nil
}

// newOllamaProvider creates a provider backed by a local Ollama server.
func newOllamaProvider(cfg *config.Config, logger *slog.Logger) (Provider, error) {
	c := cfg.LLM.Ollama
	if err := requireKey(c.Model, "llm.ollama.model"); err != nil {
		return nil, err
	}

	p, err := ollama.New(ollama.Config{
		Host:    c.Host,
		Model:   c.Model,
		Timeout: cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("initialized ollama provider",
		"host", c.Host,
		"model", c.Model,
	)

	return &ollamaProviderAdapter{provider: p}, nil
}
