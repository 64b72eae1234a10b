// Package llm provides a unified interface for chat-completion backends.
//
// # Overview
//
// The Provider interface hides which backend produced a completion. Three
// backends are supported:
//
//   - openai: any gateway speaking the OpenAI chat completions protocol,
//     authenticated with a bearer token
//   - azure: an Azure OpenAI deployment, authenticated with an api-key header
//   - ollama: a local Ollama server
//
// The openai and azure backends share one implementation built on
// github.com/openai/openai-go; they differ only in request options. The
// ollama backend lives in a subpackage with its own types and is bridged by
// an adapter.
//
//	┌──────────────┐
//	│ llm package  │  ← Provider interface, NewProvider()
//	│              │  ← chat completions (openai, azure)
//	└──────┬───────┘
//	       │
//	┌──────▼──────┐
//	│ llm/ollama  │
//	└─────────────┘
//
// # Usage
//
//	provider, err := llm.NewProvider(cfg, logger)
//	if err != nil {
//	    var cfgErr *llm.ConfigError
//	    if errors.As(err, &cfgErr) {
//	        log.Fatalf("missing setting %s", cfgErr.Key)
//	    }
//	    log.Fatal(err)
//	}
//
//	resp, err := provider.Chat(ctx, []llm.Message{
//	    {Role: "system", Content: "You are a creative marketing expert."},
//	    {Role: "user", Content: "Generate 3 slogans for ..."},
//	}, llm.DefaultChatOptions(cfg))
//
// # Error Handling
//
// Chat makes exactly one request and never retries. Failures come back as
// one of three types:
//
//   - *ConfigError: a required setting is absent (raised by NewProvider)
//   - *HTTPError: no response arrived (connection, DNS, timeout)
//   - *UpstreamError: the provider answered with a non-2xx status
//
// UpstreamError.Message gives the end-user wording: 429 and 402 each have a
// dedicated message, every other status is a generic gateway error.
//
// # Thread Safety
//
// All Provider implementations are safe for concurrent use.
package llm
