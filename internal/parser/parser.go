// Package parser extracts numbered-list items from model replies.
//
// A reply such as
//
//	Here are some ideas:
//	1. Brew bold
//	2. Sip slow
//
// yields ["Brew bold", "Sip slow"]. Preamble, explanations, and blank lines
// are dropped. Items keep their order of appearance and are not deduplicated.
package parser

import (
	"regexp"
	"strings"
)

// numbered matches "<digits>.<optional spaces><content>" on a trimmed line.
var numbered = regexp.MustCompile(`^\d+\.\s*(.+)$`)

// Parse returns the numbered items in raw, in order. A reply without any
// numbered line yields an empty, non-nil slice.
func Parse(raw string) []string {
	variants := []string{}
	for _, line := range strings.Split(raw, "\n") {
		m := numbered.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		if v := strings.TrimSpace(m[1]); v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}
