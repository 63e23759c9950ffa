package prompt

// ExtractionID is the template used to pull line items out of statement
// text.
const ExtractionID = "extraction.line_items"

func builtins() []*Template {
	return []*Template{
		{
			ID:          ExtractionID,
			Name:        "Financial line-item extraction",
			Description: "Extracts description/amounts-by-year pairs from statement text",
			Version:     "1",
			SystemPrompt: `You are an expert financial data extractor. Your task is to extract all financial line items and their corresponding numerical values from the provided text.
- The output must be a valid JSON array of objects.
- Each object must have two keys: "Description" (string) and "AmountsByYear" (an object).
- The "AmountsByYear" object should have years as keys (e.g., "2023") and numerical values as values.
- Parse numbers correctly: remove currency symbols, commas, and handle parentheses for negative numbers. Treat spaces as thousand separators (e.g., "1 234" is 1234).
- Do NOT calculate or infer any values. Only extract what is explicitly present in the text.
- Extract data from all sections, including main statements and notes.
- Example output format: [{"Description": "Revenue", "AmountsByYear": {"2023": 500000, "2022": 450000}}]`,
			UserPromptTmpl: `{{if .CustomPrompt}}{{.CustomPrompt}}

{{end}}Please extract the financial data from the following text:
---
{{.Text}}
---`,
		},
		{
			ID:          ExtractionID + ".document",
			Name:        "Financial line-item extraction (attached document)",
			Description: "Variant for sending the statement as an attachment instead of inline text",
			Version:     "1",
			SystemPrompt: `You are an expert financial data extractor. Your task is to extract all financial line items and their corresponding numerical values from the attached financial statement.
- The output must be a valid JSON array of objects.
- Each object must have two keys: "Description" (string) and "AmountsByYear" (an object).
- The "AmountsByYear" object should have years as keys (e.g., "2023") and numerical values as values.
- Parse numbers correctly: remove currency symbols, commas, and handle parentheses for negative numbers. Treat spaces as thousand separators (e.g., "1 234" is 1234).
- Do NOT calculate or infer any values. Only extract what is explicitly present in the document.
- Extract data from all sections, including main statements and notes.`,
			UserPromptTmpl: `{{if .CustomPrompt}}{{.CustomPrompt}}

{{end}}Please extract the financial data from the attached statement.`,
		},
	}
}
