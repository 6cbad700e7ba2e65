package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/princinho/storefront/models"
)

// Filter keeps the products matching cfg's categories (all when empty) and
// inclusive price range, then orders them. products is not modified.
//
// SortNewest orders by descending id. Ids stand in for recency because
// products carry no creation time.
func Filter(products []models.Product, cfg models.FilterConfig) []models.Product {
	selected := make(map[string]struct{}, len(cfg.Categories))
	for _, c := range cfg.Categories {
		selected[c] = struct{}{}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if len(selected) > 0 {
			if _, ok := selected[p.Category]; !ok {
				continue
			}
		}
		if !cfg.PriceRange.Contains(p.Price) {
			continue
		}
		out = append(out, p)
	}

	switch cfg.Sort {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case models.SortNewest:
		slices.SortStableFunc(out, func(a, b models.Product) int {
			return strings.Compare(b.Id, a.Id)
		})
	}
	return out
}
