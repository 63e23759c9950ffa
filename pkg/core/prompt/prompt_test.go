package prompt

import (
	"strings"
	"testing"
)

func TestBuiltinExtractionTemplate(t *testing.T) {
	tmpl, err := Get().GetTemplate(ExtractionID)
	if err != nil {
		t.Fatalf("builtin extraction template missing: %v", err)
	}

	rendered, err := tmpl.Render(map[string]interface{}{
		"CustomPrompt": "",
		"Text":         "Levies received 1,000",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(rendered, "Levies received 1,000") {
		t.Errorf("statement text missing from prompt: %q", rendered)
	}
	if strings.Contains(rendered, "<no value>") {
		t.Errorf("empty custom prompt leaked into output: %q", rendered)
	}
}

func TestRenderCustomPromptPrefix(t *testing.T) {
	tmpl, err := Get().GetTemplate(ExtractionID)
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	rendered, err := tmpl.Render(map[string]interface{}{
		"CustomPrompt": "Amounts are in thousands.",
		"Text":         "x",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.HasPrefix(rendered, "Amounts are in thousands.") {
		t.Errorf("custom prompt should lead the user prompt: %q", rendered)
	}
}

func TestGetTemplateUnknownID(t *testing.T) {
	if _, err := Get().GetTemplate("nope"); err == nil {
		t.Error("expected error for unknown template ID")
	}
}

func TestRegisterRequiresID(t *testing.T) {
	if err := Get().Register(&Template{}); err == nil {
		t.Error("expected error for empty template ID")
	}
}
