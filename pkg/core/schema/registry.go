// Package schema holds the fixed report taxonomy: an ordered tree of
// category -> subcategory -> canonical descriptions that defines the
// complete universe of expected report rows and their presentation order.
package schema

// Subcategory groups an ordered list of canonical descriptions.
// The name "N/A" marks rows rendered without a subcategory heading; the
// same name may appear more than once within a category (ordering is
// positional, not keyed).
type Subcategory struct {
	Name         string   `yaml:"name"`
	Descriptions []string `yaml:"descriptions"`
}

// Category is one top-level report section.
type Category struct {
	Name          string        `yaml:"name"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// NoSubcategory is the sentinel subcategory label for rows that sit
// directly under their category.
const NoSubcategory = "N/A"

// Registry is the immutable taxonomy. Built once at startup and shared
// read-only across requests; display order is declaration order at every
// level.
type Registry struct {
	categories []Category
	known      map[string]struct{}
}

// NewRegistry builds a registry from ordered category data.
func NewRegistry(categories []Category) *Registry {
	known := make(map[string]struct{})
	for _, cat := range categories {
		for _, sub := range cat.Subcategories {
			for _, desc := range sub.Descriptions {
				known[desc] = struct{}{}
			}
		}
	}
	return &Registry{categories: categories, known: known}
}

// Default returns the registry over the built-in master structure.
func Default() *Registry {
	return NewRegistry(MasterStructure())
}

// Categories returns the ordered category tree. Callers must not mutate it.
func (r *Registry) Categories() []Category {
	return r.categories
}

// Contains reports whether the description has a scheduled row.
func (r *Registry) Contains(description string) bool {
	_, ok := r.known[description]
	return ok
}

// Descriptions returns every canonical description in declaration order.
func (r *Registry) Descriptions() []string {
	var out []string
	for _, cat := range r.categories {
		for _, sub := range cat.Subcategories {
			out = append(out, sub.Descriptions...)
		}
	}
	return out
}
