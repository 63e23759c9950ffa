// Package ingest reduces non-PDF uploads to plain statement text.
package ingest

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// ExtractHTMLText strips an HTML statement down to its visible text.
// Script, style, and head content is removed; block and cell boundaries
// become single spaces so adjacent table cells do not run together.
func ExtractHTMLText(htmlContent []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, head").Remove()

	// Insert an explicit separator after structural elements; plain
	// .Text() would otherwise glue cell contents together.
	doc.Find("td, th, tr, p, div, li, br, h1, h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	body := doc.Find("body")
	text := body.Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " ")), nil
}
