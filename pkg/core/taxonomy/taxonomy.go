// Package taxonomy bundles the configuration tables the engine runs on
// (synonym map, schema registry, exclusive pairs) and loads overrides
// from YAML so the taxonomy extends without touching the algorithm.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"statement_consolidator/pkg/core/canon"
	"statement_consolidator/pkg/core/consolidate"
	"statement_consolidator/pkg/core/schema"
)

// Taxonomy is the read-only configuration handed to the engine.
type Taxonomy struct {
	Resolver *canon.Resolver
	Registry *schema.Registry
	Pairs    []consolidate.ExclusivePair
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return &Taxonomy{
		Resolver: canon.NewResolver(nil),
		Registry: schema.Default(),
		Pairs:    consolidate.DefaultExclusivePairs(),
	}
}

// file is the YAML shape of config/taxonomy.yaml. All sections are
// optional: synonyms merge over the defaults, categories and
// exclusive_pairs replace them when present.
type file struct {
	Synonyms       map[string]string           `yaml:"synonyms"`
	Categories     []schema.Category           `yaml:"categories"`
	ExclusivePairs []consolidate.ExclusivePair `yaml:"exclusive_pairs"`
}

// Load reads a taxonomy override file and applies it over the defaults.
func Load(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}
	return Parse(data)
}

// Parse applies YAML taxonomy data over the defaults.
func Parse(data []byte) (*Taxonomy, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy yaml: %w", err)
	}

	synonyms := canon.DefaultSynonyms()
	for raw, canonical := range f.Synonyms {
		synonyms[strings.ToLower(strings.TrimSpace(raw))] = canonical
	}

	registry := schema.Default()
	if len(f.Categories) > 0 {
		registry = schema.NewRegistry(f.Categories)
	}

	pairs := consolidate.DefaultExclusivePairs()
	if len(f.ExclusivePairs) > 0 {
		pairs = f.ExclusivePairs
	}

	return &Taxonomy{
		Resolver: canon.NewResolver(synonyms),
		Registry: registry,
		Pairs:    pairs,
	}, nil
}
