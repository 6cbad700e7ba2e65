package store

import (
	"math"
	"testing"

	"github.com/princinho/storefront/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, price float64, qty int) models.CartLineItem {
	return models.CartLineItem{Id: id, Name: "Product " + id, Price: price, Image: "https://img/" + id, Quantity: qty}
}

func TestAddItemMergesSameId(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 20, 1))
	s.AddItem(line("p1", 20, 2))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, decimal.NewFromInt(60).Equal(s.Subtotal()), "subtotal was %s", s.Subtotal())
}

func TestAddItemCapsLineQuantity(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 20, math.MaxInt))
	s.AddItem(line("p1", 20, 2))
	s.AddItem(line("p2", 5, 998))
	s.AddItem(line("p2", 5, 1))
	s.AddItem(line("p2", 5, 1))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, MaxLineQuantity, items[0].Quantity)
	assert.Equal(t, MaxLineQuantity, items[1].Quantity)
	assert.True(t, s.Subtotal().IsPositive(), "subtotal was %s", s.Subtotal())

	s.UpdateQuantity("p2", math.MaxInt)
	assert.Equal(t, MaxLineQuantity, s.Items()[1].Quantity)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("c", 1, 1))
	s.AddItem(line("a", 1, 1))
	s.AddItem(line("b", 1, 1))
	s.AddItem(line("a", 1, 4))

	ids := make([]string, 0)
	for _, it := range s.Items() {
		ids = append(ids, it.Id)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestAddItemSumsQuantitiesPerId(t *testing.T) {
	adds := []models.CartLineItem{
		line("x", 3.5, 2), line("y", 1.25, 1), line("x", 3.5, 5),
		line("z", 10, 1), line("y", 1.25, 3), line("x", 3.5, 1),
	}
	s := NewCartStore()
	want := map[string]int{}
	for _, it := range adds {
		s.AddItem(it)
		want[it.Id] += it.Quantity
	}

	got := map[string]int{}
	for _, it := range s.Items() {
		_, dup := got[it.Id]
		require.False(t, dup, "duplicate line for %s", it.Id)
		got[it.Id] = it.Quantity
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 15, s.TotalQuantity())
	assert.Equal(t, 3, s.Len())
}

func TestAddItemIgnoresNonPositiveQuantity(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 5, 0))
	s.AddItem(line("p2", 5, -2))
	assert.Equal(t, 0, s.Len())
}

func TestUpdateQuantity(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 2.5, 1))
	s.AddItem(line("p2", 4, 1))

	s.UpdateQuantity("p2", 5)
	assert.Equal(t, 5, s.Items()[1].Quantity)

	before := s.Items()
	s.UpdateQuantity("missing-id", 5)
	assert.Equal(t, before, s.Items())

	s.UpdateQuantity("p1", 0)
	s.UpdateQuantity("p1", -1)
	assert.Equal(t, 1, s.Items()[0].Quantity)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 1, 1))
	s.AddItem(line("p2", 2, 1))

	s.RemoveItem("p1")
	after := s.Items()
	s.RemoveItem("p1")

	assert.Equal(t, after, s.Items())
	require.Len(t, after, 1)
	assert.Equal(t, "p2", after[0].Id)
}

func TestClear(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("p1", 1, 1))
	s.Clear()
	assert.Empty(t, s.Items())
	assert.True(t, s.Subtotal().IsZero())
}

func TestSubtotalIsRecomputed(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("a", 0.1, 3))
	s.AddItem(line("b", 0.2, 1))

	first := s.Subtotal()
	assert.True(t, first.Equal(s.Subtotal()))
	assert.Equal(t, "0.5", first.String())

	s.UpdateQuantity("b", 2)
	assert.Equal(t, "0.7", s.Subtotal().String())
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewCartStore()
	s.AddItem(line("a", 1, 1))
	items := s.Items()
	items[0].Quantity = 99
	assert.Equal(t, 1, s.Items()[0].Quantity)
}
