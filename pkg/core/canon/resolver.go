// Package canon maps the raw line-item descriptions produced by OCR and
// LLM extraction onto canonical display labels. The mapping is many-to-one
// static data: spelling variants, abbreviations, and known OCR typos all
// collapse onto one canonical description.
package canon

import "strings"

// Resolution is the outcome of canonicalizing a raw description.
// Known reports whether the synonym table matched. On a miss the original
// string passes through unchanged (original case, untrimmed) and becomes
// its own canonical key; such entries surface later in the report's
// unscheduled bucket instead of being dropped.
type Resolution struct {
	Name  string
	Known bool
}

// Resolver performs synonym-table lookups. The table is read-only after
// construction, so a single Resolver is safe to share across requests.
type Resolver struct {
	synonyms map[string]string
}

// NewResolver builds a resolver over the given synonym table. Keys must be
// lower-case trimmed raw spellings; values are canonical descriptions whose
// capitalization is part of their identity (they are used as display
// labels downstream). A nil table selects the built-in defaults.
func NewResolver(synonyms map[string]string) *Resolver {
	if synonyms == nil {
		synonyms = DefaultSynonyms()
	}
	return &Resolver{synonyms: synonyms}
}

// Resolve looks up the canonical description for a raw one.
func (r *Resolver) Resolve(raw string) Resolution {
	if canonical, ok := r.synonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return Resolution{Name: canonical, Known: true}
	}
	return Resolution{Name: raw}
}
