package controllers

import (
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/princinho/storefront/catalog"
	"github.com/princinho/storefront/dto"
	"github.com/princinho/storefront/models"
)

// GET /categories
func (a *App) GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		counts := a.Catalog.CountByCategory()
		categories := a.Catalog.Categories()

		items := make([]dto.CategoryDTO, 0, len(categories))
		for _, cat := range categories {
			items = append(items, dto.CategoryDTO{Category: cat, ProductCount: counts[cat.Name]})
		}

		c.JSON(http.StatusOK, gin.H{
			"items": items,
			"total": len(items),
		})
	}
}

// GET /categories/:id
func (a *App) GetCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No Id provided"})
			return
		}

		cat, ok := a.Catalog.FindCategory(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
			return
		}

		cfg := models.DefaultFilterConfig(math.Inf(1))
		cfg.Categories = []string{cat.Name}
		cfg.Sort = models.ParseSortOrder(c.Query("sort"))

		c.JSON(http.StatusOK, dto.CategoryDetailDTO{
			Category: cat,
			Products: catalog.Filter(a.Catalog.Products(), cfg),
		})
	}
}
