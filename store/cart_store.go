package store

import (
	"sync"

	"github.com/princinho/storefront/models"
	"github.com/shopspring/decimal"
)

// MaxLineQuantity bounds the quantity of a single line.
const MaxLineQuantity = 999

// CartStore holds one shopper's line items in insertion order. There is at
// most one line per product id and every line has a quantity of at least 1.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartLineItem
}

func NewCartStore() *CartStore {
	return &CartStore{items: make([]models.CartLineItem, 0)}
}

func (s *CartStore) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].Id == id {
			return i
		}
	}
	return -1
}

// AddItem merges item into the line with the same id, or appends it.
// Items with a quantity below 1 are ignored and a line never grows past
// MaxLineQuantity.
func (s *CartStore) AddItem(item models.CartLineItem) {
	if item.Quantity < 1 {
		return
	}
	item.Quantity = min(item.Quantity, MaxLineQuantity)
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.Id); i >= 0 {
		s.items[i].Quantity = min(s.items[i].Quantity, MaxLineQuantity-item.Quantity) + item.Quantity
		return
	}
	s.items = append(s.items, item)
}

// UpdateQuantity sets the quantity of an existing line, capped at
// MaxLineQuantity. Unknown ids and quantities below 1 leave the cart
// unchanged.
func (s *CartStore) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	quantity = min(quantity, MaxLineQuantity)
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
}

func (s *CartStore) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]models.CartLineItem, 0)
}

// Items returns a copy of the lines in insertion order.
func (s *CartStore) Items() []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len is the number of distinct lines.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *CartStore) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is recomputed from the current lines on every call.
func (s *CartStore) Subtotal() decimal.Decimal {
	return Subtotal(s.Items())
}

func Subtotal(items []models.CartLineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(LineTotal(it))
	}
	return sum
}

func LineTotal(item models.CartLineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
}
