package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bimmerbailey/copygen/internal/config"
)

const completionJSON = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "message": {"role": "assistant", "content": "1. Brew bold\n2. Sip slow"}
  }],
  "usage": {"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20}
}`

var testMessages = []Message{
	{Role: "system", Content: "You are a creative marketing expert."},
	{Role: "user", Content: "Generate 2 slogans for Acme."},
}

func newOpenAITestProvider(t *testing.T, baseURL string) Provider {
	t.Helper()
	cfg := &config.Config{LLM: config.LLMConfig{
		Provider: "openai",
		Timeout:  5 * time.Second,
		OpenAI: config.OpenAIConfig{
			APIKey:  "sk-test",
			BaseURL: baseURL,
			Model:   "google/gemini-2.5-flash",
		},
	}}
	p, err := NewProvider(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}
	return p
}

func TestChatCompletion_OpenAI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q", got)
		}

		var body struct {
			Model       string  `json:"model"`
			MaxTokens   int     `json:"max_tokens"`
			Temperature float64 `json:"temperature"`
			Messages    []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Model != "google/gemini-2.5-flash" {
			t.Errorf("model = %q", body.Model)
		}
		if body.MaxTokens != 500 {
			t.Errorf("max_tokens = %d, want 500", body.MaxTokens)
		}
		if math.Abs(body.Temperature-0.7) > 1e-6 {
			t.Errorf("temperature = %v, want 0.7", body.Temperature)
		}
		if len(body.Messages) != 2 || body.Messages[0].Role != "system" || body.Messages[1].Role != "user" {
			t.Errorf("messages = %+v", body.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON))
	}))
	defer server.Close()

	p := newOpenAITestProvider(t, server.URL)
	resp, err := p.Chat(context.Background(), testMessages, &ChatOptions{Temperature: 0.7, MaxTokens: 500})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Content != "1. Brew bold\n2. Sip slow" {
		t.Errorf("Content = %q", resp.Content)
	}
	if resp.TokensPrompt != 12 || resp.TokensTotal != 20 {
		t.Errorf("tokens = %d/%d", resp.TokensPrompt, resp.TokensTotal)
	}
}

func TestChatCompletion_Azure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %q", r.URL.Path)
		}
		if !strings.Contains(r.URL.Path, "gpt-4o-mini") {
			t.Errorf("path %q should route to the deployment", r.URL.Path)
		}
		if got := r.URL.Query().Get("api-version"); got != "2024-06-01" {
			t.Errorf("api-version = %q", got)
		}
		if got := r.Header.Get("Api-Key"); got != "az-key" {
			t.Errorf("Api-Key = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON))
	}))
	defer server.Close()

	cfg := &config.Config{LLM: config.LLMConfig{
		Provider: "azure",
		Timeout:  5 * time.Second,
		Azure: config.AzureConfig{
			APIKey:     "az-key",
			Endpoint:   server.URL,
			Deployment: "gpt-4o-mini",
			APIVersion: "2024-06-01",
		},
	}}
	p, err := NewProvider(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	resp, err := p.Chat(context.Background(), testMessages, DefaultChatOptions(&config.Config{LLM: config.LLMConfig{MaxTokens: 500}}))
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if resp.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", resp.Model)
	}
}

func TestChatCompletion_UpstreamStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{"rate limited", http.StatusTooManyRequests, "Rate limits exceeded, please try again later."},
		{"payment required", http.StatusPaymentRequired, "Payment required, please add funds to your AI workspace."},
		{"server error", http.StatusInternalServerError, "AI gateway error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"error":{"message":"upstream says no","type":"x"}}`))
			}))
			defer server.Close()

			p := newOpenAITestProvider(t, server.URL)
			_, err := p.Chat(context.Background(), testMessages, nil)

			var upErr *UpstreamError
			if !errors.As(err, &upErr) {
				t.Fatalf("expected *UpstreamError, got %T: %v", err, err)
			}
			if upErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", upErr.StatusCode, tt.status)
			}
			if !strings.Contains(upErr.Body, "upstream says no") {
				t.Errorf("Body = %q", upErr.Body)
			}
			if upErr.Message() != tt.message {
				t.Errorf("Message() = %q, want %q", upErr.Message(), tt.message)
			}
			if n := calls.Load(); n != 1 {
				t.Errorf("server saw %d requests, want exactly 1", n)
			}
		})
	}
}

func TestChatCompletion_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
	}))
	defer server.Close()

	p := newOpenAITestProvider(t, server.URL)
	_, err := p.Chat(context.Background(), testMessages, nil)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestChatCompletion_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	p := newOpenAITestProvider(t, url)
	_, err := p.Chat(context.Background(), testMessages, nil)

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T: %v", err, err)
	}
	if httpErr.Provider != "openai" {
		t.Errorf("Provider = %q", httpErr.Provider)
	}
}

func TestChatCompletion_EmptyMessages(t *testing.T) {
	p := newOpenAITestProvider(t, "http://127.0.0.1:1")
	if _, err := p.Chat(context.Background(), nil, nil); err == nil {
		t.Error("Chat() should reject empty messages")
	}
}

func TestConvertMessages(t *testing.T) {
	got := convertMessages([]Message{
		{Role: "system", Content: "s"},
		{Role: "user", Content: "u"},
		{Role: "assistant", Content: "a"},
	})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].OfSystem == nil || got[1].OfUser == nil || got[2].OfAssistant == nil {
		t.Errorf("roles not preserved: %+v", got)
	}
}
