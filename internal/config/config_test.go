package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"debug lowercase", "debug", slog.LevelDebug},
		{"info lowercase", "info", slog.LevelInfo},
		{"warn lowercase", "warn", slog.LevelWarn},
		{"warning lowercase", "warning", slog.LevelWarn},
		{"error lowercase", "error", slog.LevelError},

		{"DEBUG uppercase", "DEBUG", slog.LevelDebug},
		{"WARNING uppercase", "WARNING", slog.LevelWarn},
		{"Error mixed", "Error", slog.LevelError},

		{"dbg abbrev", "dbg", slog.LevelDebug},
		{"err abbrev", "err", slog.LevelError},
		{"padded", "  warn ", slog.LevelWarn},

		{"empty string", "", slog.LevelInfo},
		{"invalid", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLevel(tt.input)
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := &Config{LogLevel: "error"}
	if got := cfg.Level(); got != slog.LevelError {
		t.Errorf("Level() = %v, want ERROR", got)
	}

	cfg.Verbose = true
	if got := cfg.Level(); got != slog.LevelDebug {
		t.Errorf("verbose Level() = %v, want DEBUG", got)
	}
}

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if err := BindEnv(v); err != nil {
		t.Fatalf("BindEnv: %v", err)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("HTTP.ShutdownTimeout = %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.LLM.Provider != "azure" {
		t.Errorf("LLM.Provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.MaxTokens != 500 {
		t.Errorf("LLM.MaxTokens = %d", cfg.LLM.MaxTokens)
	}
	if cfg.LLM.Temperature < 0.69 || cfg.LLM.Temperature > 0.71 {
		t.Errorf("LLM.Temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != time.Minute {
		t.Errorf("LLM.Timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.Ollama.Model != "llama3.2" {
		t.Errorf("LLM.Ollama.Model = %q", cfg.LLM.Ollama.Model)
	}
}

func TestLoad_PrefixedEnv(t *testing.T) {
	t.Setenv("COPYGEN_LLM_PROVIDER", "openai")
	t.Setenv("COPYGEN_LLM_OPENAI_MODEL", "google/gemini-2.5-flash")
	t.Setenv("COPYGEN_HTTP_ADDR", ":9090")

	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LLM.Provider != "openai" {
		t.Errorf("LLM.Provider = %q", cfg.LLM.Provider)
	}
	if cfg.LLM.OpenAI.Model != "google/gemini-2.5-flash" {
		t.Errorf("LLM.OpenAI.Model = %q", cfg.LLM.OpenAI.Model)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
}

// TestLoad_LegacyEnv verifies deployments configured with the legacy
// variable names keep working.
func TestLoad_LegacyEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "azure-key")
	t.Setenv("OPENAI_API_BASE", "https://example.openai.azure.com")
	t.Setenv("OPENAI_API_VERSION", "2024-06-01")
	t.Setenv("MODEL", "gpt-4o-mini")
	t.Setenv("AI_GATEWAY_API_KEY", "gateway-key")

	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	az := cfg.LLM.Azure
	if az.APIKey != "azure-key" || az.Endpoint != "https://example.openai.azure.com" ||
		az.APIVersion != "2024-06-01" || az.Deployment != "gpt-4o-mini" {
		t.Errorf("Azure = %+v", az)
	}
	if cfg.LLM.OpenAI.APIKey != "gateway-key" {
		t.Errorf("OpenAI.APIKey = %q", cfg.LLM.OpenAI.APIKey)
	}
}

func TestLoad_PrefixedEnvBeatsLegacy(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "legacy")
	t.Setenv("COPYGEN_LLM_AZURE_API_KEY", "prefixed")

	cfg, err := Load(newViper(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LLM.Azure.APIKey != "prefixed" {
		t.Errorf("Azure.APIKey = %q, want prefixed", cfg.LLM.Azure.APIKey)
	}
}

func TestLegacyEnv(t *testing.T) {
	if got := LegacyEnv("llm.azure.endpoint"); got != "OPENAI_API_BASE" {
		t.Errorf("LegacyEnv(endpoint) = %q", got)
	}
	if got := LegacyEnv("llm.ollama.host"); got != "" {
		t.Errorf("LegacyEnv(ollama.host) = %q, want empty", got)
	}
}
