package utils

import "testing"

func TestSmartParseStrictJSON(t *testing.T) {
	var out []map[string]interface{}
	if err := SmartParse(`[{"Description": "Revenue"}]`, &out); err != nil {
		t.Fatalf("strict JSON failed: %v", err)
	}
	if len(out) != 1 || out[0]["Description"] != "Revenue" {
		t.Errorf("unexpected result: %v", out)
	}
}

func TestSmartParseRepairsTrailingComma(t *testing.T) {
	var out []map[string]interface{}
	if err := SmartParse(`[{"Description": "Revenue",},]`, &out); err != nil {
		t.Fatalf("repairable JSON failed: %v", err)
	}
	if len(out) != 1 {
		t.Errorf("unexpected result: %v", out)
	}
}

func TestSmartParseRejectsGarbage(t *testing.T) {
	var out []map[string]interface{}
	if err := SmartParse("sorry, I could not find any tables", &out); err == nil {
		t.Errorf("expected failure, got %v", out)
	}
}

func TestCleanMarkdownFences(t *testing.T) {
	cases := map[string]string{
		"```json\n[1, 2]\n```":  "[1, 2]",
		"```\n[1, 2]\n```":      "[1, 2]",
		"  [1, 2]  ":            "[1, 2]",
		"```markdown\nhi\n```":  "hi",
		"```json\n{\"a\":1}```": "{\"a\":1}",
	}
	for in, want := range cases {
		if got := CleanMarkdown(in); got != want {
			t.Errorf("CleanMarkdown(%q): expected %q, got %q", in, want, got)
		}
	}
}
