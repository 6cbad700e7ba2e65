package catalog

import "github.com/princinho/storefront/models"

const RelatedLimit = 4

// Related returns up to limit other products from product's category, in
// catalog order.
func Related(product models.Product, products []models.Product, limit int) []models.Product {
	if limit < 1 {
		return []models.Product{}
	}
	out := make([]models.Product, 0, limit)
	for _, p := range products {
		if len(out) >= limit {
			break
		}
		if p.Category == product.Category && p.Id != product.Id {
			out = append(out, p)
		}
	}
	return out
}
