// Package pipeline manages the end-to-end flow for one upload batch:
// text acquisition (OCR / HTML / pre-extracted JSON / direct PDF) ->
// LLM extraction -> consolidation -> exclusivity resolution -> projection,
// with optional persistence of the result.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"statement_consolidator/pkg/core/consolidate"
	"statement_consolidator/pkg/core/extract"
	"statement_consolidator/pkg/core/ingest"
	"statement_consolidator/pkg/core/report"
	"statement_consolidator/pkg/core/store"
	"statement_consolidator/pkg/core/taxonomy"
	"statement_consolidator/pkg/models"
)

// TextExtractor turns PDF bytes into plain statement text. ocr.Client
// implements this; tests substitute fakes.
type TextExtractor interface {
	ExtractText(ctx context.Context, pdfContent []byte) (string, error)
}

// Orchestrator holds the collaborators for one deployment. Construct once
// and share; per-request state (the ledger) is allocated per call.
type Orchestrator struct {
	ocr       TextExtractor            // nil when no Vision credential is configured
	direct    *extract.DirectExtractor // PDF fallback when ocr is nil
	extractor *extract.Extractor
	taxonomy  *taxonomy.Taxonomy
	repo      *store.ReportRepo // nil disables persistence
}

// NewOrchestrator wires the pipeline. tax may be nil for the defaults;
// ocrClient, direct, and repo are optional.
func NewOrchestrator(extractor *extract.Extractor, ocrClient TextExtractor, direct *extract.DirectExtractor, tax *taxonomy.Taxonomy, repo *store.ReportRepo) *Orchestrator {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Orchestrator{
		ocr:       ocrClient,
		direct:    direct,
		extractor: extractor,
		taxonomy:  tax,
		repo:      repo,
	}
}

// Result is the outcome of one batch.
type Result struct {
	ID        uuid.UUID      `json:"id"`
	Report    *report.Report `json:"report"`
	Processed []string       `json:"processed"`
	Skipped   []string       `json:"skipped"`
}

// ProcessDocuments runs the full pipeline over one upload batch. A
// document that fails text acquisition or extraction is logged and
// skipped; the batch fails only when no document yields any line items.
func (o *Orchestrator) ProcessDocuments(ctx context.Context, docs []models.SourceDocument, customPrompt string) (*Result, error) {
	result := &Result{ID: uuid.New()}

	var allItems []models.RawLineItem
	for _, doc := range docs {
		items, err := o.extractOne(ctx, doc, customPrompt)
		if err != nil {
			log.Printf("[PIPELINE] Skipping %s: %v", doc.Filename, err)
			result.Skipped = append(result.Skipped, doc.Filename)
			continue
		}
		if len(items) == 0 {
			log.Printf("[PIPELINE] No line items extracted from %s", doc.Filename)
			result.Skipped = append(result.Skipped, doc.Filename)
			continue
		}
		allItems = append(allItems, items...)
		result.Processed = append(result.Processed, doc.Filename)
	}

	if len(allItems) == 0 {
		return nil, fmt.Errorf("could not extract any financial data from the provided files")
	}

	engine := consolidate.NewEngine(o.taxonomy.Resolver, o.taxonomy.Registry)
	ledger := engine.Consolidate(allItems)
	consolidate.ResolveExclusivity(ledger, o.taxonomy.Pairs)
	result.Report = report.Project(ledger, o.taxonomy.Registry)

	log.Printf("[PIPELINE] Consolidated %d items from %d/%d documents into %d rows",
		len(allItems), len(result.Processed), len(docs), len(result.Report.Rows))

	if o.repo != nil {
		rec := &store.SavedReport{
			ID:        result.ID,
			Filenames: result.Processed,
			Report:    result.Report,
			CreatedAt: time.Now().UTC(),
		}
		if err := o.repo.Save(ctx, rec); err != nil {
			// Persistence is best-effort; the caller still gets the report.
			log.Printf("[PIPELINE] Failed to persist report %s: %v", result.ID, err)
		}
	}

	return result, nil
}

func (o *Orchestrator) extractOne(ctx context.Context, doc models.SourceDocument, customPrompt string) ([]models.RawLineItem, error) {
	switch docKind(doc) {
	case kindJSON:
		return extract.DecodeLineItemFile(doc.Content)

	case kindHTML:
		text, err := ingest.ExtractHTMLText(doc.Content)
		if err != nil {
			return nil, err
		}
		if text == "" {
			return nil, fmt.Errorf("no text content in HTML document")
		}
		return o.extractor.Extract(ctx, text, doc.Filename, customPrompt)

	case kindPDF:
		if o.ocr != nil {
			text, err := o.ocr.ExtractText(ctx, doc.Content)
			if err != nil {
				return nil, err
			}
			if text == "" {
				return nil, fmt.Errorf("OCR produced no text")
			}
			return o.extractor.Extract(ctx, text, doc.Filename, customPrompt)
		}
		if o.direct != nil {
			return o.direct.ExtractDocument(ctx, doc.Content, "application/pdf", doc.Filename, customPrompt)
		}
		return nil, fmt.Errorf("no PDF pathway configured (neither OCR nor direct extraction)")

	default:
		// Plain text statement.
		return o.extractor.Extract(ctx, string(doc.Content), doc.Filename, customPrompt)
	}
}

type kind int

const (
	kindText kind = iota
	kindPDF
	kindHTML
	kindJSON
)

func docKind(doc models.SourceDocument) kind {
	mime := strings.ToLower(doc.MimeType)
	ext := strings.ToLower(filepath.Ext(doc.Filename))
	switch {
	case mime == "application/pdf" || ext == ".pdf":
		return kindPDF
	case strings.Contains(mime, "html") || ext == ".html" || ext == ".htm":
		return kindHTML
	case strings.Contains(mime, "json") || ext == ".json":
		return kindJSON
	}
	return kindText
}
