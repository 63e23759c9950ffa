package extract

import (
	"context"
	"fmt"
	"log"
	"os"

	gemini "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"statement_consolidator/pkg/core/prompt"
	"statement_consolidator/pkg/models"
)

// DirectExtractor sends the document bytes straight to Gemini as a blob
// part, skipping the OCR hop. Used when no Vision credential is
// configured; the model reads the PDF itself.
type DirectExtractor struct {
	Model string // empty selects "gemini-1.5-flash"
}

// ExtractDocument extracts line items directly from document bytes.
func (d *DirectExtractor) ExtractDocument(ctx context.Context, content []byte, mimeType string, filename string, customPrompt string) ([]models.RawLineItem, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := gemini.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	tmpl, err := prompt.Get().GetTemplate(prompt.ExtractionID + ".document")
	if err != nil {
		return nil, err
	}
	userPrompt, err := tmpl.Render(map[string]interface{}{"CustomPrompt": customPrompt})
	if err != nil {
		return nil, err
	}

	modelName := d.Model
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &gemini.Content{
		Parts: []gemini.Part{gemini.Text(tmpl.SystemPrompt)},
	}

	log.Printf("[EXTRACT] Sending %s (%d bytes) directly to %s", filename, len(content), modelName)
	resp, err := model.GenerateContent(ctx,
		gemini.Blob{MIMEType: mimeType, Data: content},
		gemini.Text(userPrompt),
	)
	if err != nil {
		return nil, fmt.Errorf("direct extraction failed for %s: %w", filename, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("direct extraction returned no candidates for %s", filename)
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(gemini.Text); ok {
			text += string(t)
		}
	}

	items, err := ParseLineItems(text)
	if err != nil {
		return nil, fmt.Errorf("unparseable direct extraction for %s: %w", filename, err)
	}
	return items, nil
}
