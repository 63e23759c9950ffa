package utils

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// CleanMarkdown strips an outer fenced code block (```json, ```markdown, or
// bare ```) from an LLM response, leaving the payload ready for parsing.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)
	if !strings.HasPrefix(cleaned, "```") || !strings.HasSuffix(cleaned, "```") {
		return cleaned
	}

	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimPrefix(cleaned, "```")
	// Drop the language tag on the opening fence, if any.
	if idx := strings.IndexByte(cleaned, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(cleaned[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]|") {
			cleaned = cleaned[idx+1:]
		}
	}
	return strings.TrimSpace(cleaned)
}

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// permissive, so this is a basic sanity check, not a linter.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
