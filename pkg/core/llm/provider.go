// Package llm abstracts the model backends used for financial line-item
// extraction behind one Provider interface.
package llm

import "context"

// Provider is the interface all LLM backends implement.
type Provider interface {
	// GenerateResponse sends one prompt/system-prompt pair and returns the
	// raw model text. Options carry backend-specific knobs ("model",
	// "response_format").
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
	// AdaptInstructions transforms raw instructions into model-specific
	// phrasing. Most backends return them unchanged.
	AdaptInstructions(rawInstructions string) string
}

// wantsJSON reports whether the caller asked for a JSON response via the
// conventional options shape {"response_format": {"type": "json_object"}}.
func wantsJSON(options map[string]interface{}) bool {
	val, ok := options["response_format"].(map[string]interface{})
	return ok && val["type"] == "json_object"
}
