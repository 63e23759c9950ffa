package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"statement_consolidator/pkg/core/schema"
)

const sheetName = "Financials"

// Accounting format: thousands separators, parenthesized negatives,
// dash for explicit zeros.
const currencyFormat = `_(* #,##0.00_);_(* (#,##0.00);_(* "-"??_);_(@_)`

// WriteExcel renders the report as a single-sheet workbook laid out as
// "Description | Year1 | Year2 | ...", with category and subcategory
// heading rows, indentation for item rows, and bold bordered total lines.
func WriteExcel(rep *Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}
	categoryStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	subcategoryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Indent: 1},
	})
	if err != nil {
		return nil, err
	}
	numFmt := currencyFormat
	itemStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Indent: 2},
	})
	if err != nil {
		return nil, err
	}
	valueStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return nil, err
	}
	totalBorder := []excelize.Border{
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: totalBorder,
	})
	if err != nil {
		return nil, err
	}
	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		Border:       totalBorder,
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return nil, err
	}

	// Header row.
	if err := f.SetCellValue(sheetName, "A1", "Description"); err != nil {
		return nil, err
	}
	for i, year := range rep.Years {
		cell, _ := excelize.CoordinatesToCellName(i+2, 1)
		if err := f.SetCellValue(sheetName, cell, strconv.Itoa(year)); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(rep.Years) + 1)
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "A", "A", 50); err != nil {
		return nil, err
	}
	if len(rep.Years) > 0 {
		secondCol, _ := excelize.ColumnNumberToName(2)
		if err := f.SetColWidth(sheetName, secondCol, lastCol, 20); err != nil {
			return nil, err
		}
	}

	rowIdx := 2
	lastCategory := ""
	lastSubcategory := ""
	for _, row := range rep.Rows {
		if row.Category != lastCategory {
			if lastCategory != "" {
				rowIdx++ // blank spacer between major sections
			}
			cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
			f.SetCellValue(sheetName, cell, row.Category)
			f.SetCellStyle(sheetName, cell, cell, categoryStyle)
			rowIdx++
			lastCategory = row.Category
			lastSubcategory = ""
		}
		if row.Subcategory != lastSubcategory {
			if row.Subcategory != schema.NoSubcategory {
				cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
				f.SetCellValue(sheetName, cell, row.Subcategory)
				f.SetCellStyle(sheetName, cell, cell, subcategoryStyle)
				rowIdx++
			}
			lastSubcategory = row.Subcategory
		}

		descCell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		f.SetCellValue(sheetName, descCell, row.Description)

		descStyle, valStyle := itemStyle, valueStyle
		if row.IsTotal() {
			descStyle, valStyle = totalStyle, totalValueStyle
		}
		f.SetCellStyle(sheetName, descCell, descCell, descStyle)

		for i, year := range rep.Years {
			cell, _ := excelize.CoordinatesToCellName(i+2, rowIdx)
			if v, ok := row.Value(year); ok {
				f.SetCellValue(sheetName, cell, v)
			}
			f.SetCellStyle(sheetName, cell, cell, valStyle)
		}
		rowIdx++
	}

	return f, nil
}

// ExcelBytes renders the report and serializes the workbook.
func ExcelBytes(rep *Report) ([]byte, error) {
	f, err := WriteExcel(rep)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
