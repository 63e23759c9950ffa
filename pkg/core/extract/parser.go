package extract

import (
	"encoding/json"
	"fmt"

	"statement_consolidator/pkg/core/utils"
	"statement_consolidator/pkg/models"
)

// ParseLineItems decodes an LLM response into line items, tolerating
// markdown fences and structurally broken JSON. Items missing a
// description or amounts map are dropped rather than failing the batch.
func ParseLineItems(response string) ([]models.RawLineItem, error) {
	cleaned := utils.CleanMarkdown(response)

	var items []models.RawLineItem
	if err := utils.SmartParse(cleaned, &items); err != nil {
		// Some models wrap the array in an envelope object.
		var envelope struct {
			Items []models.RawLineItem `json:"items"`
			Data  []models.RawLineItem `json:"data"`
		}
		if err := utils.SmartParse(cleaned, &envelope); err != nil {
			return nil, fmt.Errorf("EXTRACT_PARSE_FAILED: %v", err)
		}
		items = envelope.Items
		if len(items) == 0 {
			items = envelope.Data
		}
		if len(items) == 0 {
			return nil, fmt.Errorf("EXTRACT_PARSE_FAILED: response is not a line-item array")
		}
	}

	kept := items[:0]
	for _, item := range items {
		if item.Description == "" || item.AmountsByYear == nil {
			continue
		}
		kept = append(kept, item)
	}
	return kept, nil
}

// DecodeLineItemFile decodes a pre-extracted line-item JSON document (for
// the offline CLI and the pre-extracted upload path).
func DecodeLineItemFile(data []byte) ([]models.RawLineItem, error) {
	var items []models.RawLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Fall back to the lenient chain: the file may be saved raw LLM
		// output rather than clean JSON.
		return ParseLineItems(string(data))
	}
	return items, nil
}
