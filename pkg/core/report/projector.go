// Package report projects a consolidated ledger onto the schema registry's
// display order and renders the result for export.
package report

import (
	"sort"
	"strings"

	"statement_consolidator/pkg/core/consolidate"
	"statement_consolidator/pkg/core/schema"
)

// UnscheduledCategory labels the trailing bucket for descriptions that
// carry data but have no schema row, so extraction results never silently
// disappear when the schema is incomplete.
const UnscheduledCategory = "Unscheduled Items"

// Row is one rendered report line. Values holds only the years that carry
// an extracted amount; renderers leave the other year columns blank.
type Row struct {
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Values      map[int]float64 `json:"values"`
}

// Value returns the amount for a year and whether the row holds one.
func (r Row) Value(year int) (float64, bool) {
	v, ok := r.Values[year]
	return v, ok
}

// IsTotal reports whether renderers should style this row as a total line.
// By convention that is any canonical description containing "total".
func (r Row) IsTotal() bool {
	return strings.Contains(strings.ToLower(r.Description), "total")
}

// Report is the ordered projection of one consolidation. Years are the
// distinct years seen across the ledger, newest first.
type Report struct {
	Years []int `json:"years"`
	Rows  []Row `json:"rows"`
}

// Project walks the registry in declaration order and emits a row for
// every description holding at least one year value, followed by the
// alphabetically sorted unscheduled bucket. Output is deterministic for a
// given ledger and registry; nothing depends on map iteration order.
func Project(ledger consolidate.Ledger, registry *schema.Registry) *Report {
	if registry == nil {
		registry = schema.Default()
	}

	yearSet := make(map[int]struct{})
	for _, years := range ledger {
		for y := range years {
			yearSet[y] = struct{}{}
		}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	var rows []Row
	for _, cat := range registry.Categories() {
		for _, sub := range cat.Subcategories {
			for _, desc := range sub.Descriptions {
				values := ledger[desc]
				if len(values) == 0 {
					continue
				}
				rows = append(rows, Row{
					Description: desc,
					Category:    cat.Name,
					Subcategory: sub.Name,
					Values:      copyValues(values),
				})
			}
		}
	}

	var unscheduled []string
	for desc, values := range ledger {
		if len(values) == 0 || registry.Contains(desc) {
			continue
		}
		unscheduled = append(unscheduled, desc)
	}
	sort.Strings(unscheduled)
	for _, desc := range unscheduled {
		rows = append(rows, Row{
			Description: desc,
			Category:    UnscheduledCategory,
			Subcategory: schema.NoSubcategory,
			Values:      copyValues(ledger[desc]),
		})
	}

	return &Report{Years: years, Rows: rows}
}

func copyValues(values map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(values))
	for y, v := range values {
		out[y] = v
	}
	return out
}
