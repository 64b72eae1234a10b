package llm

import (
	"context"
	"fmt"
	"net/http"
)

// ConfigError reports a required configuration value that is absent.
type ConfigError struct {
	// Key is the config key, e.g. "llm.azure.endpoint"
	Key string

	// Env lists environment variables that can also supply the value
	Env []string
}

func (e *ConfigError) Error() string {
	if len(e.Env) == 0 {
		return fmt.Sprintf("llm config: %s is required", e.Key)
	}
	return fmt.Sprintf("llm config: %s is required (or set %v)", e.Key, e.Env)
}

// HTTPError reports a transport failure: connection refused, DNS, timeout,
// or cancellation before a response arrived.
type HTTPError struct {
	Provider string
	Err      error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *HTTPError) Unwrap() error { return e.Err }

// UpstreamError reports a non-2xx answer from the provider.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API returned %d: %s", e.Provider, e.StatusCode, e.Body)
}

// Message is the end-user text for the failure. Rate limiting and billing
// get their own wording; everything else is a generic gateway error.
func (e *UpstreamError) Message() string {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return "Rate limits exceeded, please try again later."
	case http.StatusPaymentRequired:
		return "Payment required, please add funds to your AI workspace."
	default:
		return "AI gateway error"
	}
}

// unconfigured stands in for a provider whose settings are incomplete.
// Every Chat fails with the stored *ConfigError, so a server can start and
// report the problem per request.
type unconfigured struct {
	name string
	err  *ConfigError
}

// Unconfigured returns a Provider that fails every call with err.
func Unconfigured(name string, err *ConfigError) Provider {
	return &unconfigured{name: name, err: err}
}

func (u *unconfigured) Chat(context.Context, []Message, *ChatOptions) (*Response, error) {
	return nil, u.err
}

func (u *unconfigured) Heartbeat(context.Context) error { return u.err }

func (u *unconfigured) Name() string { return u.name }
