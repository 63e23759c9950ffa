// Package extract turns statement text (or raw document bytes) into
// RawLineItem records via an LLM, and parses the model's JSON output
// defensively.
package extract

import (
	"context"
	"fmt"
	"log"

	"statement_consolidator/pkg/core/prompt"
	"statement_consolidator/pkg/models"
)

// PromptRunner executes a prompt under a named agent role. *agent.Manager
// satisfies this; tests substitute fakes.
type PromptRunner interface {
	ExecutePrompt(ctx context.Context, agentType string, rawPrompt string, rawSystemPrompt string, options map[string]interface{}) (string, error)
}

// AgentRole is the agent type extraction prompts run under, used for
// per-role provider overrides in config/models.yaml.
const AgentRole = "extraction"

// Extractor extracts line items from plain statement text.
type Extractor struct {
	runner PromptRunner
}

// NewExtractor builds an extractor over the given runner.
func NewExtractor(runner PromptRunner) *Extractor {
	return &Extractor{runner: runner}
}

// Extract sends the statement text to the model and parses the response.
// customPrompt, when non-empty, is prepended to the user prompt (operators
// use it to steer extraction for unusual statements).
func (e *Extractor) Extract(ctx context.Context, text string, filename string, customPrompt string) ([]models.RawLineItem, error) {
	tmpl, err := prompt.Get().GetTemplate(prompt.ExtractionID)
	if err != nil {
		return nil, err
	}
	userPrompt, err := tmpl.Render(map[string]interface{}{
		"CustomPrompt": customPrompt,
		"Text":         text,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[EXTRACT] Sending text from %s for line-item extraction", filename)
	response, err := e.runner.ExecutePrompt(ctx, AgentRole, userPrompt, tmpl.SystemPrompt, map[string]interface{}{
		"response_format": map[string]interface{}{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", filename, err)
	}

	items, err := ParseLineItems(response)
	if err != nil {
		return nil, fmt.Errorf("unparseable extraction response for %s: %w", filename, err)
	}
	log.Printf("[EXTRACT] Parsed %d line items from %s", len(items), filename)
	return items, nil
}
