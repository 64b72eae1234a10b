package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// ContentType identifies the kind of marketing copy a prompt asks for.
// Each type produces a distinct copywriter persona and user template.
type ContentType string

const (
	// TypeSlogan asks for short, memorable slogans and taglines.
	TypeSlogan ContentType = "slogan"

	// TypeSocial asks for social media captions tailored to a platform.
	TypeSocial ContentType = "social"

	// TypeHashtags asks for sets of hashtags mixing popular and niche tags.
	TypeHashtags ContentType = "hashtags"

	// TypeProduct asks for e-commerce product descriptions.
	TypeProduct ContentType = "product"

	// TypeEmail asks for marketing emails, each with a subject and a body.
	TypeEmail ContentType = "email"
)

// Variation bounds accepted by [Build].
const (
	MinVariations = 1
	MaxVariations = 5
)

// Fields reports which optional request fields a content type uses.
type Fields struct {
	TargetAudience bool `json:"targetAudience" yaml:"target_audience"`
	Tone           bool `json:"tone" yaml:"tone"`
	Platform       bool `json:"platform" yaml:"platform"`
}

// ContentTypes returns every supported content type in display order.
func ContentTypes() []ContentType {
	return []ContentType{TypeSlogan, TypeSocial, TypeHashtags, TypeProduct, TypeEmail}
}

// ParseContentType converts s to a ContentType, ignoring case and
// surrounding whitespace.
func ParseContentType(s string) (ContentType, error) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(s)))
	if !ct.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidContentType, s)
	}
	return ct, nil
}

// Valid reports whether ct is one of the supported content types.
func (ct ContentType) Valid() bool {
	_, ok := catalog[ct]
	return ok
}

// Fields returns the optional fields relevant to ct.
// Unknown types use no optional fields.
func (ct ContentType) Fields() Fields {
	return catalog[ct].fields
}

// Label returns the human-readable name of ct, e.g. "Social Media Captions".
func (ct ContentType) Label() string {
	if e, ok := catalog[ct]; ok {
		return e.label
	}
	return string(ct)
}

// Request holds everything the caller knows about the copy to generate.
// Only the fields relevant to Type (see [ContentType.Fields]) are rendered.
type Request struct {
	// Type selects the persona and template.
	// Ignored when CustomPrompt is set.
	Type ContentType

	// BusinessName is the brand the copy is written for.
	// Required unless CustomPrompt is set.
	BusinessName string

	// ProductInfo describes the product or service.
	// Required unless CustomPrompt is set.
	ProductInfo string

	TargetAudience string
	Tone           string
	Platform       string

	// Variations is the number of items to request, in [MinVariations, MaxVariations].
	// Callers clamp with [ClampVariations] before building.
	Variations int

	// CustomPrompt replaces template construction entirely when non-empty.
	CustomPrompt string
}

// Pair is the system and user prompt sent to the model, in that order.
type Pair struct {
	System string
	User   string
}

var (
	// ErrInvalidContentType is returned when the content type is not
	// recognised and no custom prompt was supplied.
	ErrInvalidContentType = errors.New("prompt: invalid content type")

	// ErrMissingField is returned when a required request field is blank.
	ErrMissingField = errors.New("prompt: missing required field")

	// ErrVariationCount is returned when Variations is outside the
	// accepted range. Build never clamps.
	ErrVariationCount = errors.New("prompt: variation count out of range")
)

// missingField wraps [ErrMissingField] with the specific field name.
func missingField(field string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, field)
}

// ClampVariations forces n into [MinVariations, MaxVariations].
// It is applied once, where requests enter the program.
func ClampVariations(n int) int {
	switch {
	case n < MinVariations:
		return MinVariations
	case n > MaxVariations:
		return MaxVariations
	default:
		return n
	}
}
