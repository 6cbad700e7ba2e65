package dto

import (
	"github.com/princinho/storefront/models"
	"github.com/princinho/storefront/store"
)

type AddCartItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=999"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity" binding:"required,min=1,max=999"`
}

type CartLineDTO struct {
	models.CartLineItem
	LineTotal string `json:"lineTotal"`
}

// CartDTO is the cart page: lines plus the order summary. Amounts are
// formatted with two decimals.
type CartDTO struct {
	Items         []CartLineDTO `json:"items"`
	ItemCount     int           `json:"itemCount"`
	TotalQuantity int           `json:"totalQuantity"`
	Subtotal      string        `json:"subtotal"`
	Shipping      string        `json:"shipping"`
	Tax           string        `json:"tax"`
	Total         string        `json:"total"`
}

func NewCartDTO(cart *store.CartStore, rates store.Rates) CartDTO {
	items := cart.Items()
	lines := make([]CartLineDTO, 0, len(items))
	for _, it := range items {
		lines = append(lines, CartLineDTO{CartLineItem: it, LineTotal: store.LineTotal(it).StringFixed(2)})
	}
	count := cart.Len()
	summary := store.Summarize(cart.Subtotal(), count, rates)
	return CartDTO{
		Items:         lines,
		ItemCount:     count,
		TotalQuantity: cart.TotalQuantity(),
		Subtotal:      summary.Subtotal.StringFixed(2),
		Shipping:      summary.Shipping.StringFixed(2),
		Tax:           summary.Tax.StringFixed(2),
		Total:         summary.Total.StringFixed(2),
	}
}
