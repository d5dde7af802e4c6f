package catalog

import (
	"sort"
	"strings"

	"storefront/models"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// ParseSortKey returns the sort key for a query-param value, falling back
// to featured for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceAsc, SortPriceDesc, SortRating, SortNewest:
		return SortKey(s)
	default:
		return SortFeatured
	}
}

// ApplyView runs the product listing pipeline: category filter, price
// filter, text filter, sort, paginate, in that order. It returns the
// visible page and the total count after filtering. The input slice is
// never mutated.
func ApplyView(catalog []models.Product, filters models.FilterOptions, sortKey SortKey, page, pageSize int) ([]models.Product, int) {
	filtered := make([]models.Product, 0, len(catalog))
	query := strings.ToLower(strings.TrimSpace(filters.SearchQuery))

	for _, p := range catalog {
		if !matchesCategory(p, filters.Categories) {
			continue
		}
		if p.Price < filters.MinPrice || p.Price > filters.MaxPrice {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating.Rate > filtered[j].Rating.Rate
		})
	case SortNewest:
		// Upstream records carry no timestamp, so "newest" is approximated
		// by reversing the filtered order.
		for i, j := 0, len(filtered)-1; i < j; i, j = i+1, j-1 {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		}
	default:
		// featured: keep the filtered order
	}

	total := len(filtered)
	return paginate(filtered, page, pageSize), total
}

func matchesCategory(p models.Product, categories []string) bool {
	if len(categories) == 0 {
		return true
	}
	for _, c := range categories {
		if strings.EqualFold(p.Category, c) {
			return true
		}
	}
	return false
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func paginate(items []models.Product, page, pageSize int) []models.Product {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
