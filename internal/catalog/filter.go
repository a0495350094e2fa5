package catalog

import (
	"sort"
	"strings"
)

// Filter narrows the catalog the way the selection grid does: exact color
// and type match, case-insensitive substring on description. Empty fields
// match everything.
type Filter struct {
	Color  string
	Type   string
	Search string
}

func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Color != "" && p.Color != f.Color {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(p.Description), strings.ToLower(f.Search)) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Colors lists the distinct colors in the catalog, sorted, for the filter
// dropdown.
func Colors(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Color })
}

// Types lists the distinct types in the catalog, sorted.
func Types(products []Product) []string {
	return distinct(products, func(p Product) string { return p.Type })
}

func distinct(products []Product, key func(Product) string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
