// Package ocr wraps Google Cloud Vision document text detection for
// uploaded PDF statements.
package ocr

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// Client is a thin wrapper over the Vision ImageAnnotator client.
type Client struct {
	annotator *vision.ImageAnnotatorClient
}

// NewClient builds a Vision client using application default credentials
// (or any explicit option passed through).
func NewClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	annotator, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vision client: %w", err)
	}
	return &Client{annotator: annotator}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.annotator.Close()
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// ExtractText runs DOCUMENT_TEXT_DETECTION over the PDF bytes and returns
// the concatenated page text with runs of whitespace collapsed to single
// spaces, the shape the extraction prompt expects.
func (c *Client) ExtractText(ctx context.Context, pdfContent []byte) (string, error) {
	log.Printf("[OCR] Starting document text detection (%d bytes)", len(pdfContent))

	req := &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig: &visionpb.InputConfig{
				Content:  pdfContent,
				MimeType: "application/pdf",
			},
			Features: []*visionpb.Feature{{
				Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION,
			}},
		}},
	}

	resp, err := c.annotator.BatchAnnotateFiles(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision OCR failed: %w", err)
	}

	var b strings.Builder
	for _, fileResp := range resp.GetResponses() {
		if fileResp.GetError() != nil {
			return "", fmt.Errorf("vision OCR error: %s", fileResp.GetError().GetMessage())
		}
		for _, pageResp := range fileResp.GetResponses() {
			if annotation := pageResp.GetFullTextAnnotation(); annotation != nil {
				b.WriteString(annotation.GetText())
			}
		}
	}

	text := strings.TrimSpace(whitespaceRE.ReplaceAllString(b.String(), " "))
	log.Printf("[OCR] Finished document text detection (%d chars)", len(text))
	return text, nil
}
