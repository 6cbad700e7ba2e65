package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		lines    int
		shipping string
		tax      string
		total    string
	}{
		{name: "empty cart", subtotal: "0", lines: 0, shipping: "0", tax: "0", total: "0"},
		{name: "one line", subtotal: "60", lines: 1, shipping: "10", tax: "6", total: "76"},
		{name: "cents", subtotal: "19.99", lines: 2, shipping: "10", tax: "1.999", total: "31.989"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(decimal.RequireFromString(tt.subtotal), tt.lines, DefaultRates())
			assert.Equal(t, tt.shipping, s.Shipping.String())
			assert.Equal(t, tt.tax, s.Tax.String())
			assert.Equal(t, tt.total, s.Total.String())
		})
	}
}
