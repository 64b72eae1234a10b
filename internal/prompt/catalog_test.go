package prompt

import "testing"

// TestCatalog_Complete guards the closed enum: every listed type needs a
// catalog entry with a persona, a label and a parsed template.
func TestCatalog_Complete(t *testing.T) {
	types := ContentTypes()
	if len(types) != len(catalog) {
		t.Fatalf("ContentTypes() has %d entries, catalog has %d", len(types), len(catalog))
	}

	for _, ct := range types {
		e, ok := catalog[ct]
		if !ok {
			t.Errorf("%s: missing catalog entry", ct)
			continue
		}
		if e.system == "" {
			t.Errorf("%s: empty system prompt", ct)
		}
		if e.label == "" {
			t.Errorf("%s: empty label", ct)
		}
		if templates[ct] == nil {
			t.Errorf("%s: template not parsed", ct)
		}
	}
}
