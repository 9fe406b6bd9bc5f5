package catalog

import (
	"sort"
	"strings"
)

// SortBy Ordering applied after filtering.
type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortName      SortBy = "name"
)

// ParseSortBy maps a raw query value onto a known ordering, defaulting to
// featured for anything unrecognized.
func ParseSortBy(s string) SortBy {
	switch SortBy(s) {
	case SortPriceLow, SortPriceHigh, SortName:
		return SortBy(s)
	default:
		return SortFeatured
	}
}

// Query Browsing criteria. Zero values mean "no constraint": an empty
// category list passes every category, MaxPrice <= 0 disables the price
// cap, an empty search matches everything.
type Query struct {
	Categories []string
	MaxPrice   int64
	Search     string
	SortBy     SortBy
}

// FilterAndSort reduces products to those matching q, then orders them.
// Pure function: the input slice is never mutated, and identical inputs
// yield identical output order (featured sorting is stable).
func FilterAndSort(products []Product, q Query) []Product {
	result := make([]Product, 0, len(products))
	search := strings.ToLower(q.Search)
	for _, p := range products {
		if len(q.Categories) > 0 && !containsString(q.Categories, p.Category) {
			continue
		}
		if q.MaxPrice > 0 && p.Price.Amount() > q.MaxPrice {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		result = append(result, p)
	}

	switch q.SortBy {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount() < result[j].Price.Amount()
		})
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount() > result[j].Price.Amount()
		})
	case SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Name < result[j].Name
		})
	default:
		// Featured first, original order otherwise.
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Featured && !result[j].Featured
		})
	}

	return result
}

// Related returns up to limit products sharing the given product's
// category, excluding the product itself.
func Related(products []Product, p Product, limit int) []Product {
	related := make([]Product, 0, limit)
	for _, other := range products {
		if other.Category == p.Category && other.ID != p.ID {
			related = append(related, other)
			if len(related) == limit {
				break
			}
		}
	}
	return related
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
