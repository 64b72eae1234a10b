package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bimmerbailey/copygen/internal/generate"
	"github.com/bimmerbailey/copygen/internal/llm"
	"github.com/bimmerbailey/copygen/internal/output"
	"github.com/bimmerbailey/copygen/internal/prompt"
)

const maxBodyBytes = 64 << 10

type handler struct {
	svc    *generate.Service
	logger *slog.Logger
}

// generateRequest is the body of POST /generate-content.
type generateRequest struct {
	ContentType    string `json:"contentType"`
	BusinessName   string `json:"businessName"`
	ProductInfo    string `json:"productInfo"`
	TargetAudience string `json:"targetAudience"`
	Tone           string `json:"tone"`
	Platform       string `json:"platform"`
	Variations     int    `json:"variations"`
	CustomPrompt   string `json:"customPrompt"`
}

func (g generateRequest) toPrompt() prompt.Request {
	return prompt.Request{
		Type:           prompt.ContentType(strings.ToLower(strings.TrimSpace(g.ContentType))),
		BusinessName:   g.BusinessName,
		ProductInfo:    g.ProductInfo,
		TargetAudience: g.TargetAudience,
		Tone:           g.Tone,
		Platform:       g.Platform,
		Variations:     prompt.ClampVariations(g.Variations),
		CustomPrompt:   g.CustomPrompt,
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"provider": h.svc.Provider().Name(),
	})
}

func (h *handler) contentTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, output.Catalog())
}

func (h *handler) generateContent(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	res, err := h.svc.Generate(r.Context(), body.toPrompt())
	if err != nil {
		status, eb := classify(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("generate-content failed", "status", status, "error", err)
		}
		writeJSON(w, status, eb)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// classify maps a generation error to an HTTP status and response body.
func classify(err error) (int, errorBody) {
	var (
		cfgErr  *llm.ConfigError
		upErr   *llm.UpstreamError
		httpErr *llm.HTTPError
	)

	switch {
	case errors.Is(err, prompt.ErrInvalidContentType),
		errors.Is(err, prompt.ErrMissingField),
		errors.Is(err, prompt.ErrVariationCount):
		return http.StatusBadRequest, errorBody{Error: err.Error()}

	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, errorBody{Error: cfgErr.Error()}

	case errors.As(err, &upErr):
		switch upErr.StatusCode {
		case http.StatusTooManyRequests, http.StatusPaymentRequired:
			return upErr.StatusCode, errorBody{Error: upErr.Message()}
		default:
			return http.StatusBadGateway, errorBody{Error: upErr.Message(), Details: upErr.Body}
		}

	case errors.Is(err, llm.ErrInvalidResponse):
		return http.StatusBadGateway, errorBody{Error: "AI gateway error", Details: err.Error()}

	case errors.As(err, &httpErr):
		return http.StatusBadGateway, errorBody{Error: "AI gateway unreachable", Details: httpErr.Err.Error()}

	default:
		return http.StatusInternalServerError, errorBody{Error: err.Error()}
	}
}

// writeJSON writes a JSON response with the given HTTP status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with the given HTTP status code.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorBody{Error: message, Details: details})
}
