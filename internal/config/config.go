// Package config provides configuration types and helpers for copygen.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every automatically bound environment variable,
// e.g. llm.azure.endpoint -> COPYGEN_LLM_AZURE_ENDPOINT.
const EnvPrefix = "COPYGEN"

// Config holds the application-wide configuration.
type Config struct {
	Format   string     `mapstructure:"format"`
	Verbose  bool       `mapstructure:"verbose"`
	LogLevel string     `mapstructure:"log_level"`
	HTTP     HTTPConfig `mapstructure:"http"`
	LLM      LLMConfig  `mapstructure:"llm"`
}

// HTTPConfig holds settings for the serve command.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LLMConfig holds configuration for chat-completion providers.
type LLMConfig struct {
	// Provider selects the backend: "openai", "azure", "ollama"
	Provider string `mapstructure:"provider"`

	// Global settings applied to every request
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`

	// Provider-specific configuration
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Azure  AzureConfig  `mapstructure:"azure"`
	Ollama OllamaConfig `mapstructure:"ollama"`
}

// OpenAIConfig holds settings for an OpenAI-compatible gateway using bearer auth.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`  // Optional: read from AI_GATEWAY_API_KEY if empty
	BaseURL string `mapstructure:"base_url"` // e.g. "https://api.openai.com/v1"
	Model   string `mapstructure:"model"`    // e.g. "google/gemini-2.5-flash"
}

// AzureConfig holds settings for an Azure OpenAI deployment.
type AzureConfig struct {
	APIKey     string `mapstructure:"api_key"`     // OPENAI_API_KEY
	Endpoint   string `mapstructure:"endpoint"`    // OPENAI_API_BASE
	Deployment string `mapstructure:"deployment"`  // MODEL
	APIVersion string `mapstructure:"api_version"` // OPENAI_API_VERSION
}

// OllamaConfig holds Ollama-specific settings.
type OllamaConfig struct {
	Host  string `mapstructure:"host"`  // API endpoint
	Model string `mapstructure:"model"` // Default model name
}

// legacyEnv maps config keys to the variable names used by existing
// deployments. COPYGEN_* variables take precedence over these.
var legacyEnv = map[string]string{
	"llm.azure.api_key":     "OPENAI_API_KEY",
	"llm.azure.endpoint":    "OPENAI_API_BASE",
	"llm.azure.api_version": "OPENAI_API_VERSION",
	"llm.azure.deployment":  "MODEL",
	"llm.openai.api_key":    "AI_GATEWAY_API_KEY",
}

// LegacyEnv returns the fallback environment variable for key, if any.
func LegacyEnv(key string) string {
	return legacyEnv[key]
}

// SetDefaults registers every key with its default value. Keys must be known
// to viper for Unmarshal to pick up environment overrides.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", "text")
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", "10s")

	v.SetDefault("llm.provider", "azure")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.timeout", "60s")

	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("llm.openai.model", "")

	v.SetDefault("llm.azure.api_key", "")
	v.SetDefault("llm.azure.endpoint", "")
	v.SetDefault("llm.azure.deployment", "")
	v.SetDefault("llm.azure.api_version", "")

	v.SetDefault("llm.ollama.host", "http://localhost:11434")
	v.SetDefault("llm.ollama.model", "llama3.2")
}

// BindEnv enables COPYGEN_* variables and the legacy fallbacks on v.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}
	return nil
}

// Load unmarshals v into a Config. It does not validate provider settings;
// that happens when the provider is constructed.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ParseLevel converts a string to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Level returns the effective log level; Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return ParseLevel(c.LogLevel)
}
