package prompt

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/bimmerbailey/copygen/internal/llm"
)

// templateData is the value each user template is executed against.
// Optional fields are already blanked when irrelevant to the type.
type templateData struct {
	Count          int
	BusinessName   string
	ProductInfo    string
	TargetAudience string
	Tone           string
	Platform       string
}

var funcs = template.FuncMap{
	"plural": func(n int, singular, plural string) string {
		if n > 1 {
			return plural
		}
		return singular
	},
}

// templates holds the parsed user template for every catalog entry.
var templates = mustParseTemplates()

func mustParseTemplates() map[ContentType]*template.Template {
	out := make(map[ContentType]*template.Template, len(catalog))
	for ct, e := range catalog {
		out[ct] = template.Must(template.New(string(ct)).Funcs(funcs).Parse(e.template))
	}
	return out
}

// Build constructs the system and user prompt for req.
//
// A non-empty CustomPrompt short-circuits everything else: the generic
// creative persona is used and the prompt is passed through unchanged.
// Otherwise:
//   - Type must be valid, or ErrInvalidContentType is returned
//   - BusinessName and ProductInfo must be non-blank (ErrMissingField)
//   - Variations must already be within range (ErrVariationCount)
func Build(req Request) (Pair, error) {
	if strings.TrimSpace(req.CustomPrompt) != "" {
		return Pair{System: customSystem, User: req.CustomPrompt}, nil
	}

	e, ok := catalog[req.Type]
	if !ok {
		return Pair{}, fmt.Errorf("%w: %q", ErrInvalidContentType, req.Type)
	}

	if strings.TrimSpace(req.BusinessName) == "" {
		return Pair{}, missingField("businessName")
	}
	if strings.TrimSpace(req.ProductInfo) == "" {
		return Pair{}, missingField("productInfo")
	}
	if req.Variations < MinVariations || req.Variations > MaxVariations {
		return Pair{}, fmt.Errorf("%w: %d (want %d-%d)",
			ErrVariationCount, req.Variations, MinVariations, MaxVariations)
	}

	var sb strings.Builder
	if err := templates[req.Type].Execute(&sb, newTemplateData(req, e.fields)); err != nil {
		return Pair{}, fmt.Errorf("render %s prompt: %w", req.Type, err)
	}

	return Pair{System: e.system, User: sb.String()}, nil
}

// newTemplateData copies req into template form, dropping optional values the
// content type does not use.
func newTemplateData(req Request, f Fields) templateData {
	d := templateData{
		Count:        req.Variations,
		BusinessName: strings.TrimSpace(req.BusinessName),
		ProductInfo:  strings.TrimSpace(req.ProductInfo),
	}
	if f.TargetAudience {
		d.TargetAudience = strings.TrimSpace(req.TargetAudience)
	}
	if f.Tone {
		d.Tone = strings.TrimSpace(req.Tone)
	}
	if f.Platform {
		d.Platform = strings.TrimSpace(req.Platform)
	}
	return d
}

// Messages converts p into the two-message array sent to a provider.
func (p Pair) Messages() []llm.Message {
	return []llm.Message{
		{Role: "system", Content: p.System},
		{Role: "user", Content: p.User},
	}
}
