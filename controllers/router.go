package controllers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/princinho/storefront/middleware"
	"github.com/princinho/storefront/store"
)

type RouterConfig struct {
	AllowedOrigins []string
	Session        middleware.SessionConfig
}

func NewRouter(a *App, registry *store.CartRegistry, cfg RouterConfig) *gin.Engine {
	r := gin.New()

	allowedOrigins := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.SessionHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.SessionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestLogger(a.Logger))
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/home", a.GetHome())
	r.GET("/products", a.GetProducts())
	r.GET("/products/:id", a.GetProduct())
	r.GET("/products/slug/:slug", a.GetProductBySlug())
	r.GET("/categories", a.GetCategories())
	r.GET("/categories/:id", a.GetCategory())

	cart := r.Group("/cart")
	cart.Use(middleware.CartSession(registry, cfg.Session, a.Logger))
	{
		cart.GET("", a.GetCart())
		cart.DELETE("", a.ClearCart(registry))
		cart.POST("/items", a.AddCartItem())
		cart.PATCH("/items/:id", a.UpdateCartItem())
		cart.DELETE("/items/:id", a.RemoveCartItem())
	}

	return r
}
