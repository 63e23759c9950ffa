package report

import (
	"fmt"
	"strconv"
	"strings"
)

// WriteMarkdown renders the report as a markdown table, one section
// heading per category, for quick preview without opening a workbook.
func WriteMarkdown(rep *Report) string {
	var b strings.Builder
	b.WriteString("# Consolidated Financials\n")

	header := "| Description |"
	divider := "| --- |"
	for _, year := range rep.Years {
		header += " " + strconv.Itoa(year) + " |"
		divider += " ---: |"
	}

	lastCategory := ""
	for _, row := range rep.Rows {
		if row.Category != lastCategory {
			b.WriteString("\n## " + row.Category + "\n\n")
			b.WriteString(header + "\n")
			b.WriteString(divider + "\n")
			lastCategory = row.Category
		}

		desc := row.Description
		if row.IsTotal() {
			desc = "**" + desc + "**"
		}
		b.WriteString("| " + desc + " |")
		for _, year := range rep.Years {
			if v, ok := row.Value(year); ok {
				b.WriteString(fmt.Sprintf(" %.2f |", v))
			} else {
				b.WriteString("  |")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
