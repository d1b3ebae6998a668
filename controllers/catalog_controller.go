package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solvera/storefront-api/catalog"
	"github.com/solvera/storefront-api/services"
)

// CatalogController serves the browse, search and product detail endpoints.
type CatalogController struct {
	service services.CatalogService
}

func NewCatalogController(service services.CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// ListProducts handles GET /products?category=&price=&sort=.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	criteria := catalog.Criteria{
		Category:   c.DefaultQuery("category", catalog.CategoryAll),
		PriceRange: catalog.PriceRange(c.DefaultQuery("price", string(catalog.PriceAll))),
		SortBy:     catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured))),
	}

	products, svcErr := cc.service.ListProducts(c.Request.Context(), criteria)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"count":    len(products),
			"category": criteria.Category,
			"price":    criteria.PriceRange,
			"sort":     criteria.SortBy,
		},
	})
}

// SearchProducts handles GET /products/search?q=.
func (cc *CatalogController) SearchProducts(c *gin.Context) {
	query := c.Query("q")

	products, svcErr := cc.service.SearchProducts(c.Request.Context(), query)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"count": len(products),
			"query": query,
		},
	})
}

// GetProduct handles GET /products/:id.
func (cc *CatalogController) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	product, svcErr := cc.service.GetProduct(c.Request.Context(), id)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, product)
}
