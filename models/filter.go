package models

import "strings"

type SortOrder string

const (
	SortFeatured  SortOrder = "featured"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
	SortNewest    SortOrder = "newest"
)

// ParseSortOrder falls back to SortFeatured for anything it does not know.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortNewest:
		return SortNewest
	default:
		return SortFeatured
	}
}

// PriceRange is inclusive on both ends.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

type FilterConfig struct {
	Categories []string   `json:"categories"`
	PriceRange PriceRange `json:"priceRange"`
	Sort       SortOrder  `json:"sort"`
}

func DefaultFilterConfig(maxPrice float64) FilterConfig {
	return FilterConfig{
		Categories: []string{},
		PriceRange: PriceRange{Min: 0, Max: maxPrice},
		Sort:       SortFeatured,
	}
}
