package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/storefront/dto"
	"github.com/princinho/storefront/middleware"
	"github.com/princinho/storefront/models"
	"github.com/princinho/storefront/store"
	"go.uber.org/zap"
)

func (a *App) cart(c *gin.Context) (*store.CartStore, bool) {
	cart, ok := middleware.CartFromContext(c)
	if !ok {
		a.Logger.Error("cart route reached without a cart session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
		return nil, false
	}
	return cart, true
}

func (a *App) respondCart(c *gin.Context, status int, cart *store.CartStore) {
	c.JSON(status, dto.NewCartDTO(cart, a.Rates))
}

// GET /cart
func (a *App) GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := a.cart(c)
		if !ok {
			return
		}
		a.respondCart(c, http.StatusOK, cart)
	}
}

// POST /cart/items
// The line's name, price and image are copied from the catalog product.
func (a *App) AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := a.cart(c)
		if !ok {
			return
		}

		var body dto.AddCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, found := a.Catalog.FindByID(strings.TrimSpace(body.ProductID))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		cart.AddItem(models.CartLineItem{
			Id:       product.Id,
			Name:     product.Name,
			Price:    product.Price,
			Image:    product.Image,
			Quantity: body.Quantity,
		})
		a.Logger.Info("added to cart",
			zap.String("session_id", middleware.SessionIDFromContext(c)),
			zap.String("product_id", product.Id),
			zap.Int("quantity", body.Quantity))

		a.respondCart(c, http.StatusOK, cart)
	}
}

// PATCH /cart/items/:id
func (a *App) UpdateCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := a.cart(c)
		if !ok {
			return
		}

		var body dto.UpdateCartItemDTO
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart.UpdateQuantity(c.Param("id"), body.Quantity)
		a.respondCart(c, http.StatusOK, cart)
	}
}

// DELETE /cart/items/:id
func (a *App) RemoveCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := a.cart(c)
		if !ok {
			return
		}
		cart.RemoveItem(c.Param("id"))
		a.respondCart(c, http.StatusOK, cart)
	}
}

// DELETE /cart
// The emptied cart is released from the registry; the session's next
// request opens a fresh one.
func (a *App) ClearCart(registry *store.CartRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, ok := a.cart(c)
		if !ok {
			return
		}
		cart.Clear()
		registry.Drop(middleware.SessionIDFromContext(c))
		a.respondCart(c, http.StatusOK, cart)
	}
}
