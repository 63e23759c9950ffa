// Package normalize parses the loosely formatted numeric tokens and year
// keys that come back from OCR and LLM extraction. Nothing here fails
// loudly: a token that cannot be parsed reports absence, and the caller
// treats absence as "no data for this cell", never as zero.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount converts a raw extracted value into a float.
// Numeric inputs pass through unchanged. Strings are trimmed, a
// parenthesized form "(X)" marks the value negative, and every character
// other than a digit or a decimal point is stripped before parsing (this
// removes currency symbols, comma separators, and space separators in one
// pass). The second return value is false when no value could be parsed.
func Amount(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case string:
		return amountFromString(v)
	}
	return 0, false
}

func amountFromString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, false
	}

	// Multiple decimal points (or a lone dot) fail here and report absence.
	value, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		value = -value
	}
	return value, true
}

// Year parses a year key from an AmountsByYear map. Only purely numeric
// keys are accepted; anything else is dropped by the caller without
// failing the rest of the item.
func Year(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}
