// Package prompt is a small library of LLM prompt templates. Built-in
// defaults cover the extraction flow; JSON files in a resources directory
// can override them at startup without a code change.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// Template is one reusable prompt: a fixed system instruction plus a Go
// text/template for the user prompt.
type Template struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	SystemPrompt   string `json:"system_prompt"`
	UserPromptTmpl string `json:"user_prompt_template"`
	Version        string `json:"version"`
}

// Render executes the user-prompt template with the given variables.
func (t *Template) Render(vars map[string]interface{}) (string, error) {
	tmpl, err := template.New(t.ID).Parse(t.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", t.ID, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", t.ID, err)
	}
	return buf.String(), nil
}
