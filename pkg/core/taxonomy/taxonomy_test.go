package taxonomy

import "testing"

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()
	if res := tax.Resolver.Resolve("ppe"); res.Name != "Property, plant and equipment" {
		t.Errorf("default resolver broken: %+v", res)
	}
	if !tax.Registry.Contains("Total Assets") {
		t.Error("default registry broken")
	}
	if len(tax.Pairs) != 1 || tax.Pairs[0].Primary != "Accumulated surplus" {
		t.Errorf("default pairs broken: %v", tax.Pairs)
	}
}

func TestParseMergesSynonyms(t *testing.T) {
	tax, err := Parse([]byte(`
synonyms:
  "Net Sales": Revenue
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if res := tax.Resolver.Resolve("net sales"); !res.Known || res.Name != "Revenue" {
		t.Errorf("override synonym not applied: %+v", res)
	}
	// Defaults survive a synonym merge.
	if res := tax.Resolver.Resolve("ppe"); !res.Known {
		t.Errorf("default synonyms lost on merge: %+v", res)
	}
	if !tax.Registry.Contains("Total Assets") {
		t.Error("registry must default when categories absent")
	}
}

func TestParseReplacesCategoriesAndPairs(t *testing.T) {
	tax, err := Parse([]byte(`
categories:
  - name: Income
    subcategories:
      - name: N/A
        descriptions: ["Revenue", "Total Income"]
exclusive_pairs:
  - primary: Net profit
    secondary: Net loss
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if tax.Registry.Contains("Total Assets") {
		t.Error("categories override must replace the default registry")
	}
	if !tax.Registry.Contains("Revenue") {
		t.Error("override categories missing")
	}
	if len(tax.Pairs) != 1 || tax.Pairs[0].Primary != "Net profit" || tax.Pairs[0].Secondary != "Net loss" {
		t.Errorf("pair override not applied: %v", tax.Pairs)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("synonyms: [not, a, map]")); err == nil {
		t.Error("expected error for malformed taxonomy yaml")
	}
}
