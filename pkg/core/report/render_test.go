package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"statement_consolidator/pkg/core/utils"
)

func sampleReport() *Report {
	return &Report{
		Years: []int{2022, 2021},
		Rows: []Row{
			{Description: "Bank balances", Category: "Assets", Subcategory: "Current Assets",
				Values: map[int]float64{2022: 1500, 2021: 900.5}},
			{Description: "Total Assets", Category: "Assets", Subcategory: "N/A",
				Values: map[int]float64{2022: 1500}},
			{Description: "Revenue", Category: "Comprehensive Income", Subcategory: "Revenue",
				Values: map[int]float64{2021: 42}},
		},
	}
}

func TestWriteExcelLayout(t *testing.T) {
	data, err := ExcelBytes(sampleReport())
	if err != nil {
		t.Fatalf("ExcelBytes failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Generated workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Financials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}

	if len(rows) == 0 || rows[0][0] != "Description" || rows[0][1] != "2022" || rows[0][2] != "2021" {
		t.Fatalf("Header row wrong: %v", rows[0])
	}

	// Category heading, then subcategory heading, then the item row.
	var flat []string
	for _, r := range rows[1:] {
		if len(r) > 0 {
			flat = append(flat, r[0])
		} else {
			flat = append(flat, "")
		}
	}
	joined := strings.Join(flat, "\n")
	for _, want := range []string{"Assets", "Current Assets", "Bank balances", "Total Assets", "Comprehensive Income", "Revenue"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Workbook missing %q; got rows %v", want, flat)
		}
	}

	// The N/A subcategory must not render a heading row of its own.
	if strings.Contains(joined, "N/A") {
		t.Errorf("N/A sentinel leaked into the sheet: %v", flat)
	}
}

func TestWriteMarkdownTable(t *testing.T) {
	md := WriteMarkdown(sampleReport())

	if !strings.Contains(md, "## Assets") || !strings.Contains(md, "## Comprehensive Income") {
		t.Errorf("Missing category headings:\n%s", md)
	}
	if !strings.Contains(md, "| Bank balances | 1500.00 | 900.50 |") {
		t.Errorf("Missing bank balances row:\n%s", md)
	}
	if !strings.Contains(md, "| **Total Assets** | 1500.00 |  |") {
		t.Errorf("Total row must be bold with a blank 2021 cell:\n%s", md)
	}
	if !utils.ValidateMarkdown(md) {
		t.Error("Rendered markdown failed validation")
	}
}
