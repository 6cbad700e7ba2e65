// Package catalog holds the read-only product catalog and the pure
// functions that derive what the shopper sees from it.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/princinho/storefront/models"
	"github.com/princinho/storefront/utils"
)

var (
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrInvalidPrice     = errors.New("product price must not be negative")
	ErrMissingID        = errors.New("product id is required")
	ErrUnknownFeatured  = errors.New("featured product not in catalog")
)

// Catalog is immutable once built; accessors hand out copies.
type Catalog struct {
	products   []models.Product
	featured   []string
	categories []models.Category
	byID       map[string]int
	bySlug     map[string]int
}

// New validates products and builds a catalog. When featuredIDs is empty the
// featured subset is taken from the products' IsFeatured flags. When no
// category descriptors are given they are derived from product categories.
func New(products []models.Product, featuredIDs []string, categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		products: make([]models.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
		bySlug:   make(map[string]int, len(products)),
	}

	for _, p := range products {
		p.Id = strings.TrimSpace(p.Id)
		if p.Id == "" {
			return nil, fmt.Errorf("%w (name %q)", ErrMissingID, p.Name)
		}
		if _, dup := c.byID[p.Id]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.Id)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPrice, p.Id)
		}
		if p.Slug == "" {
			p.Slug = utils.GenerateSlug(p.Name)
		}
		c.byID[p.Id] = len(c.products)
		if _, taken := c.bySlug[p.Slug]; !taken && p.Slug != "" {
			c.bySlug[p.Slug] = len(c.products)
		}
		c.products = append(c.products, p)
	}

	if len(featuredIDs) > 0 {
		for i := range c.products {
			c.products[i].IsFeatured = false
		}
		for _, id := range featuredIDs {
			i, ok := c.byID[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownFeatured, id)
			}
			c.products[i].IsFeatured = true
			c.featured = append(c.featured, id)
		}
	} else {
		for _, p := range c.products {
			if p.IsFeatured {
				c.featured = append(c.featured, p.Id)
			}
		}
	}

	if len(categories) == 0 {
		for _, name := range c.CategoryNames() {
			categories = append(categories, models.Category{Name: name})
		}
	}
	c.categories = make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Id == "" {
			cat.Id = utils.GenerateSlug(cat.Name)
		}
		c.categories = append(c.categories, cat)
	}

	return c, nil
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }

// Featured returns the curated subset in curation order.
func (c *Catalog) Featured() []models.Product {
	out := make([]models.Product, 0, len(c.featured))
	for _, id := range c.featured {
		out = append(out, c.products[c.byID[id]])
	}
	return out
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryNames lists the distinct product categories in first-seen order.
func (c *Catalog) CategoryNames() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	return names
}

func (c *Catalog) FindByID(id string) (models.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) FindBySlug(slug string) (models.Product, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Product{}, false
	}
	return c.products[i], true
}

// FindCategory matches a descriptor by id, or by the slug of its name.
func (c *Catalog) FindCategory(id string) (models.Category, bool) {
	for _, cat := range c.categories {
		if cat.Id == id || utils.GenerateSlug(cat.Name) == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// CountByCategory maps category name to the number of products in it.
func (c *Catalog) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, p := range c.products {
		counts[p.Category]++
	}
	return counts
}
