// Package catalog filters, sorts and searches an in-memory product list. It
// performs no I/O; callers fetch the catalog and pass it in whole.
package catalog

import (
	"sort"
	"strings"

	"github.com/solvera/storefront-api/models"
)

// PriceRange names a price band. Adjacent bands share their boundary values
// on purpose: a product priced exactly 1000, 2000 or 5000 matches both bands
// touching that boundary. This is long-standing storefront behavior and must
// not be "fixed" here.
type PriceRange string

const (
	PriceAll       PriceRange = "all"
	PriceUnder1000 PriceRange = "under1000"
	Price1000To2K  PriceRange = "1000-2000"
	Price2KTo5K    PriceRange = "2000-5000"
	PriceOver5K    PriceRange = "over5000"
)

// SortKey names a sort order for the filtered list.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortName      SortKey = "name"
)

// CategoryAll is the category sentinel that disables category filtering.
const CategoryAll = "all"

// Criteria is one catalog query: category from the route, price band and sort
// key from the UI selectors. Zero values behave like "all"/"featured".
type Criteria struct {
	Category   string     `json:"category"`
	PriceRange PriceRange `json:"price_range"`
	SortBy     SortKey    `json:"sort_by"`
}

// Query applies the category filter, then the price-band filter, then the
// sort, and returns a new slice. The input is never mutated and featured
// order is the input order. Unknown enum values fall back to no filtering and
// no sorting rather than failing.
func Query(products []models.Product, c Criteria) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if c.Category != "" && c.Category != CategoryAll && p.Category != c.Category {
			continue
		}
		if !matchesPriceRange(p.Price, c.PriceRange) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch c.SortBy {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortName:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Name < filtered[j].Name
		})
	default:
		// featured: keep input order
	}

	return filtered
}

// Search matches every whitespace-separated term of query against the
// lowercased concatenation of name, category and description. A product
// matches only if all terms are substrings. An empty or whitespace-only
// query returns an empty result, not the full catalog.
//
// The description is joined twice when present, mirroring the searchable
// text the storefront has always built; matching behavior is unchanged by
// the duplication but the join is kept for compatibility.
func Search(products []models.Product, query string) []models.Product {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return []models.Product{}
	}

	matched := make([]models.Product, 0)
	for _, p := range products {
		fields := []string{p.Name, p.Category, p.Description}
		if p.Description != "" {
			fields = append(fields, p.Description)
		}
		haystack := strings.ToLower(strings.Join(fields, " "))

		all := true
		for _, term := range terms {
			if !strings.Contains(haystack, term) {
				all = false
				break
			}
		}
		if all {
			matched = append(matched, p)
		}
	}
	return matched
}

func matchesPriceRange(price float64, r PriceRange) bool {
	switch r {
	case PriceUnder1000:
		return price < 1000
	case Price1000To2K:
		return price >= 1000 && price <= 2000
	case Price2KTo5K:
		return price >= 2000 && price <= 5000
	case PriceOver5K:
		return price > 5000
	default:
		// "all", empty, or anything unrecognized
		return true
	}
}
