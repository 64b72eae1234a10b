package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/spf13/viper"
)

func TestEnvHint(t *testing.T) {
	tests := []struct {
		err  *llm.ConfigError
		want string
	}{
		{&llm.ConfigError{Key: "llm.provider"}, "COPYGEN_LLM_PROVIDER"},
		{&llm.ConfigError{Key: "llm.azure.api_key", Env: []string{"OPENAI_API_KEY"}}, "COPYGEN_LLM_AZURE_API_KEY or OPENAI_API_KEY"},
	}
	for _, tt := range tests {
		if got := envHint(tt.err); got != tt.want {
			t.Errorf("envHint(%s) = %q, want %q", tt.err.Key, got, tt.want)
		}
	}
}

func TestJoinOr(t *testing.T) {
	if got := joinOr(nil); got != "" {
		t.Errorf("joinOr(nil) = %q", got)
	}
	if got := joinOr([]string{"A", "B", "C"}); got != "A, B or C" {
		t.Errorf("joinOr = %q", got)
	}
}

func TestApplyLogLevel(t *testing.T) {
	viper.Reset()
	viper.Set("log_level", "error")
	applyLogLevel()
	if logLevel.Level().String() != "ERROR" {
		t.Errorf("level = %v, want ERROR", logLevel.Level())
	}

	viper.Set("verbose", true)
	applyLogLevel()
	if logLevel.Level().String() != "DEBUG" {
		t.Errorf("level = %v, want DEBUG", logLevel.Level())
	}

	viper.Reset()
	applyLogLevel()
}

func TestTypesCommand(t *testing.T) {
	viper.Reset()
	viper.Set("format", "text")

	var out bytes.Buffer
	typesCmd.SetOut(&out)
	defer typesCmd.SetOut(nil)

	if err := typesCmd.RunE(typesCmd, nil); err != nil {
		t.Fatalf("types error = %v", err)
	}
	for _, want := range []string{"slogan", "social", "hashtags", "product", "email", "platform"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("types output missing %q:\n%s", want, out.String())
		}
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	versionCmd.Run(versionCmd, nil)
	if !strings.HasPrefix(out.String(), "copygen dev") {
		t.Errorf("version output = %q", out.String())
	}
}
