package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/storefront/catalog"
	"github.com/princinho/storefront/dto"
	"github.com/princinho/storefront/models"
	"github.com/princinho/storefront/utils"
)

// GET /products?category=Audio&category=Kitchen&minPrice=0&maxPrice=200&sort=price-asc&page=1&limit=20
func (a *App) GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), a.DefaultLimit)
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > a.MaxLimit {
			limit = a.DefaultLimit
		}

		cfg := a.filterConfig(c)

		products := a.Catalog.Products()
		if b, err := utils.ParseBoolQuery(c.Query("featured")); err == nil && b != nil && *b {
			products = a.Catalog.Featured()
		}

		filtered := catalog.Filter(products, cfg)
		start, end := utils.Paginate(len(filtered), page, limit)

		c.JSON(http.StatusOK, gin.H{
			"items":      filtered[start:end],
			"page":       page,
			"limit":      limit,
			"total":      len(filtered),
			"filters":    cfg,
			"categories": a.Catalog.CategoryNames(),
		})
	}
}

func (a *App) filterConfig(c *gin.Context) models.FilterConfig {
	cfg := models.DefaultFilterConfig(a.PriceMax)
	cfg.Categories = utils.SplitList(c.QueryArray("category"))
	cfg.PriceRange.Min = utils.ParseFloatDefault(c.Query("minPrice"), cfg.PriceRange.Min)
	cfg.PriceRange.Max = utils.ParseFloatDefault(c.Query("maxPrice"), cfg.PriceRange.Max)
	cfg.Sort = models.ParseSortOrder(c.Query("sort"))
	return cfg
}

// GET /products/:id
func (a *App) GetProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := a.Catalog.FindByID(strings.TrimSpace(c.Param("id")))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, a.productDetail(product))
	}
}

// GET /products/slug/:slug
func (a *App) GetProductBySlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		product, ok := a.Catalog.FindBySlug(strings.TrimSpace(c.Param("slug")))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusOK, a.productDetail(product))
	}
}

func (a *App) productDetail(product models.Product) dto.ProductDetailDTO {
	return dto.ProductDetailDTO{
		Product: product,
		Related: catalog.Related(product, a.Catalog.Products(), catalog.RelatedLimit),
	}
}

// GET /home
func (a *App) GetHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HomeDTO{
			Featured:   a.Catalog.Featured(),
			Categories: a.Catalog.Categories(),
		})
	}
}
