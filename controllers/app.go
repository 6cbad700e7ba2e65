package controllers

import (
	"github.com/princinho/storefront/catalog"
	"github.com/princinho/storefront/store"
	"go.uber.org/zap"
)

// App carries what the handlers read from. Carts are not here: they come
// from the request context, put there by middleware.CartSession.
type App struct {
	Catalog      *catalog.Catalog
	Rates        store.Rates
	PriceMax     float64
	DefaultLimit int
	MaxLimit     int
	Logger       *zap.Logger
}
