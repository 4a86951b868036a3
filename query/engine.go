// Package query filters and sorts the merged catalog. The engine is pure
// and stateless: every call recomputes from scratch, and debouncing rapid
// search input is left to the caller's invocation cadence.
package query

import (
	"sort"
	"strings"

	"github.com/atripati/altetudegear/domain"
)

// Sort orders applied after filtering.
const (
	SortFeatured  = "featured"
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// Spec describes one faceted query. All predicates are AND-combined; a
// facet left at its zero value matches everything.
type Spec struct {
	SearchTerm string
	Collection string
	Category   string
	Size       string
	Color      string
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
}

func matchesSearch(p domain.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesSize(p domain.Product, size string) bool {
	for _, entry := range p.Inventory {
		if entry.Size == size && entry.Stock > 0 {
			return true
		}
	}
	return false
}

func matchesColor(p domain.Product, color string) bool {
	for _, c := range p.Colors {
		if c.Name == color {
			return true
		}
	}
	return false
}

func matches(p domain.Product, spec Spec, term string) bool {
	if term != "" && !matchesSearch(p, term) {
		return false
	}
	if spec.Collection != "" && !strings.EqualFold(p.Collection, spec.Collection) {
		return false
	}
	if spec.Category != "" && p.Category != spec.Category {
		return false
	}
	if spec.Size != "" && !matchesSize(p, spec.Size) {
		return false
	}
	if spec.Color != "" && !matchesColor(p, spec.Color) {
		return false
	}
	if spec.MinPrice != nil && p.Price < *spec.MinPrice {
		return false
	}
	if spec.MaxPrice != nil && p.Price > *spec.MaxPrice {
		return false
	}
	return true
}

// partition returns products with pick(p) true first, then the rest,
// preserving relative order within each group.
func partition(products []domain.Product, pick func(domain.Product) bool) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if pick(p) {
			out = append(out, p)
		}
	}
	for _, p := range products {
		if !pick(p) {
			out = append(out, p)
		}
	}
	return out
}

// Run applies spec to products and returns the ordered result list. The
// input slice is not modified. Sorting is stable with respect to the
// pre-sort order for equal keys.
func Run(products []domain.Product, spec Spec) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(spec.SearchTerm))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matches(p, spec, term) {
			result = append(result, p)
		}
	}

	switch spec.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortNewest:
		result = partition(result, func(p domain.Product) bool { return p.IsNew })
	default:
		// featured - best sellers first
		result = partition(result, func(p domain.Product) bool { return p.IsBestSeller })
	}
	return result
}
