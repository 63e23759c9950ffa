package models

// RawLineItem is one financial line as extracted by the LLM: a free-text
// description plus a map of year-like keys ("2023") to loosely formatted
// amounts. Amounts may arrive as JSON numbers or as strings carrying
// currency symbols, thousands separators (commas or spaces), or
// parenthesized negatives ("(500.00)"). The engine consumes these
// read-only; one RawLineItem per extracted line per source document.
type RawLineItem struct {
	Description   string                 `json:"Description"`
	AmountsByYear map[string]interface{} `json:"AmountsByYear"`
}

// SourceDocument is an uploaded financial statement before text extraction.
// MimeType is best-effort (taken from the upload or the file extension);
// the pipeline falls back to extension sniffing when it is empty.
type SourceDocument struct {
	Filename string
	MimeType string
	Content  []byte
}
