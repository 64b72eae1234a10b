// Package output renders generation results and the content-type catalog.
// It supports text, JSON, YAML, and table formats.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/bimmerbailey/copygen/internal/generate"
	"github.com/bimmerbailey/copygen/internal/prompt"
	"gopkg.in/yaml.v3"
)

// Format represents an output format type.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// ParseFormat converts a string to a Format, defaulting to text.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "table":
		return FormatTable
	default:
		return FormatText
	}
}

// Writer handles writing formatted output.
type Writer struct {
	w      io.Writer
	format Format
	color  bool
}

// New creates a new output Writer. Colour is decided from mode and whether
// w is a terminal.
func New(w io.Writer, format Format, mode ColorMode) *Writer {
	return &Writer{w: w, format: format, color: shouldColorize(mode, w)}
}

// TypeInfo describes one content type for listing.
type TypeInfo struct {
	Type   prompt.ContentType `json:"type" yaml:"type"`
	Label  string             `json:"label" yaml:"label"`
	Fields prompt.Fields      `json:"fields" yaml:"fields"`
}

// Catalog returns a TypeInfo for every supported content type.
func Catalog() []TypeInfo {
	types := prompt.ContentTypes()
	out := make([]TypeInfo, len(types))
	for i, ct := range types {
		out[i] = TypeInfo{Type: ct, Label: ct.Label(), Fields: ct.Fields()}
	}
	return out
}

// WriteResult outputs a generation result in the configured format.
// showPrompt adds the user prompt to text and table output; structured
// formats always carry it.
func (wr *Writer) WriteResult(res *generate.Result, showPrompt bool) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(res)
	case FormatYAML:
		return wr.WriteYAML(res)
	case FormatTable:
		return wr.writeResultTable(res, showPrompt)
	default:
		return wr.writeResultText(res, showPrompt)
	}
}

// WriteTypes outputs the content-type catalog in the configured format.
func (wr *Writer) WriteTypes(types []TypeInfo) error {
	switch wr.format {
	case FormatJSON:
		return wr.WriteJSON(types)
	case FormatYAML:
		return wr.WriteYAML(types)
	}

	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLABEL\tFIELDS")
	for _, t := range types {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Type, t.Label, fieldList(t.Fields))
	}
	return tw.Flush()
}

// WriteJSON outputs any value as indented JSON.
func (wr *Writer) WriteJSON(v interface{}) error {
	enc := json.NewEncoder(wr.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML outputs any value as YAML.
func (wr *Writer) WriteYAML(v interface{}) error {
	enc := yaml.NewEncoder(wr.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (wr *Writer) writeResultText(res *generate.Result, showPrompt bool) error {
	if showPrompt {
		fmt.Fprintln(wr.w, wr.paint(colorGray, "Prompt: "+res.Prompt))
		fmt.Fprintln(wr.w)
	}

	if len(res.Variants) == 0 {
		fmt.Fprintln(wr.w, wr.paint(colorYellow, "No numbered variations in reply."))
		return nil
	}

	for i, v := range res.Variants {
		marker := wr.paint(colorBold, fmt.Sprintf("%d.", i+1))
		if _, err := fmt.Fprintf(wr.w, "%s %s\n", marker, v); err != nil {
			return err
		}
	}
	return nil
}

func (wr *Writer) writeResultTable(res *generate.Result, showPrompt bool) error {
	tw := tabwriter.NewWriter(wr.w, 0, 4, 2, ' ', 0)
	if showPrompt {
		fmt.Fprintf(tw, "PROMPT\t%s\n", oneLine(res.Prompt, 100))
	}
	fmt.Fprintln(tw, "#\tVARIANT")
	fmt.Fprintln(tw, "-\t-------")
	for i, v := range res.Variants {
		fmt.Fprintf(tw, "%d\t%s\n", i+1, oneLine(v, 100))
	}
	return tw.Flush()
}

// Export writes each variant to dir as "{type}-{n}.txt", n starting at 1,
// and returns the paths written. dir is created if missing.
func Export(dir string, ct prompt.ContentType, variants []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	name := string(ct)
	if name == "" {
		name = "content"
	}

	paths := make([]string, 0, len(variants))
	for i, v := range variants {
		path := filepath.Join(dir, fmt.Sprintf("%s-%d.txt", name, i+1))
		if err := os.WriteFile(path, []byte(v), 0o644); err != nil {
			return paths, fmt.Errorf("export variant %d: %w", i+1, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func fieldList(f prompt.Fields) string {
	var names []string
	if f.TargetAudience {
		names = append(names, "audience")
	}
	if f.Tone {
		names = append(names, "tone")
	}
	if f.Platform {
		names = append(names, "platform")
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// oneLine collapses newlines and truncates s to max runes.
func oneLine(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}
