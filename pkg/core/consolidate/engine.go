// Package consolidate folds extracted line items from any number of source
// documents into a single ledger keyed by canonical description, and
// enforces the exclusivity rules between accounts that cannot both hold a
// value for the same year.
package consolidate

import (
	"strings"

	"statement_consolidator/pkg/core/canon"
	"statement_consolidator/pkg/core/normalize"
	"statement_consolidator/pkg/core/schema"
	"statement_consolidator/pkg/models"
)

// Ledger maps canonical description -> year -> accumulated amount.
// A missing year key means "no extracted value", never zero. A Ledger is
// built per request; it is never shared across consolidations.
type Ledger map[string]map[int]float64

// Value returns the amount for a (description, year) slot and whether the
// slot holds one.
func (l Ledger) Value(description string, year int) (float64, bool) {
	v, ok := l[description][year]
	return v, ok
}

// Engine performs the fold. It is stateless between calls and safe to
// share: the resolver and registry it holds are read-only.
type Engine struct {
	resolver *canon.Resolver
	registry *schema.Registry
}

// NewEngine builds an engine over the given taxonomy. Nil arguments select
// the built-in defaults.
func NewEngine(resolver *canon.Resolver, registry *schema.Registry) *Engine {
	if resolver == nil {
		resolver = canon.NewResolver(nil)
	}
	if registry == nil {
		registry = schema.Default()
	}
	return &Engine{resolver: resolver, registry: registry}
}

// Consolidate folds raw line items into a fresh ledger.
//
// Every scheduled description is pre-seeded with an empty year map so each
// schema row is representable even when no document supplies data for it.
// Duplicate contributions to the same (description, year) slot are summed:
// the same line item legitimately repeats across statement pages and
// notes, and overwriting would silently drop one of two real
// contributions. Malformed year keys and unparseable amounts are dropped
// per pair; the rest of the item still lands.
func (e *Engine) Consolidate(items []models.RawLineItem) Ledger {
	ledger := make(Ledger)
	for _, desc := range e.registry.Descriptions() {
		ledger[desc] = make(map[int]float64)
	}

	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		res := e.resolver.Resolve(item.Description)
		slot, ok := ledger[res.Name]
		if !ok {
			// Passthrough description with no schema row; it still
			// accumulates and surfaces in the unscheduled bucket.
			slot = make(map[int]float64)
			ledger[res.Name] = slot
		}

		for yearKey, raw := range item.AmountsByYear {
			year, ok := normalize.Year(yearKey)
			if !ok {
				continue
			}
			value, ok := normalize.Amount(raw)
			if !ok {
				continue
			}
			slot[year] += value
		}
	}

	return ledger
}
