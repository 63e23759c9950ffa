package extract

import "testing"

func TestParseLineItemsCleanJSON(t *testing.T) {
	items, err := ParseLineItems(`[{"Description": "Revenue", "AmountsByYear": {"2023": 100}}]`)
	if err != nil {
		t.Fatalf("ParseLineItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Revenue" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseLineItemsFencedJSON(t *testing.T) {
	response := "```json\n[{\"Description\": \"Levies\", \"AmountsByYear\": {\"2023\": \"1,000\"}}]\n```"
	items, err := ParseLineItems(response)
	if err != nil {
		t.Fatalf("fenced response should parse: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Levies" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseLineItemsRepairsBrokenJSON(t *testing.T) {
	// Trailing comma and unclosed bracket, the usual model damage.
	response := `[{"Description": "Insurance", "AmountsByYear": {"2023": 42},}`
	items, err := ParseLineItems(response)
	if err != nil {
		t.Fatalf("repairable response should parse: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Insurance" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseLineItemsEnvelope(t *testing.T) {
	response := `{"items": [{"Description": "Water", "AmountsByYear": {"2022": 7}}]}`
	items, err := ParseLineItems(response)
	if err != nil {
		t.Fatalf("envelope response should parse: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Water" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestParseLineItemsDropsIncompleteItems(t *testing.T) {
	response := `[
		{"Description": "Good", "AmountsByYear": {"2023": 1}},
		{"Description": "", "AmountsByYear": {"2023": 2}},
		{"Description": "No amounts"}
	]`
	items, err := ParseLineItems(response)
	if err != nil {
		t.Fatalf("ParseLineItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Good" {
		t.Errorf("incomplete items must be dropped, got %+v", items)
	}
}

func TestParseLineItemsRejectsGarbage(t *testing.T) {
	if _, err := ParseLineItems("I'm sorry, I cannot process this document."); err == nil {
		t.Error("expected error for a non-JSON refusal")
	}
}

func TestDecodeLineItemFileLenientFallback(t *testing.T) {
	// A saved raw model response rather than clean JSON.
	data := []byte("```json\n[{\"Description\": \"Security\", \"AmountsByYear\": {\"2023\": 5}}]\n```")
	items, err := DecodeLineItemFile(data)
	if err != nil {
		t.Fatalf("DecodeLineItemFile failed: %v", err)
	}
	if len(items) != 1 || items[0].Description != "Security" {
		t.Errorf("unexpected items: %+v", items)
	}
}
