package store

import "github.com/shopspring/decimal"

type Rates struct {
	ShippingFlat decimal.Decimal
	TaxRate      decimal.Decimal
}

func DefaultRates() Rates {
	return Rates{
		ShippingFlat: decimal.NewFromInt(10),
		TaxRate:      decimal.RequireFromString("0.1"),
	}
}

type Summary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Summarize prices an order. Shipping is charged only when the cart has lines.
func Summarize(subtotal decimal.Decimal, lines int, rates Rates) Summary {
	shipping := decimal.Zero
	if lines > 0 {
		shipping = rates.ShippingFlat
	}
	tax := subtotal.Mul(rates.TaxRate)
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
