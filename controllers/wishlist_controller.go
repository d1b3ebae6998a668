package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/solvera/storefront-api/middleware"
	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/services"
)

// WishlistController serves the authenticated wishlist endpoints.
type WishlistController struct {
	service services.WishlistService
}

func NewWishlistController(service services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

// ListItems handles GET /wishlist.
func (wc *WishlistController) ListItems(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	items, svcErr := wc.service.ListItems(c.Request.Context(), userID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"meta":  gin.H{"count": len(items)},
	})
}

// AddItem handles POST /wishlist. Adding a product that is already saved is
// not an error; the response reports which case occurred.
func (wc *WishlistController) AddItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	item, created, svcErr := wc.service.AddItem(c.Request.Context(), userID, req.ProductID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	status := http.StatusOK
	message := "Item is already in your wishlist"
	if created {
		status = http.StatusCreated
		message = "Item added to wishlist"
	}
	c.JSON(status, gin.H{"item": item, "message": message})
}

// RemoveItem handles DELETE /wishlist/:id.
func (wc *WishlistController) RemoveItem(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item ID"})
		return
	}

	if svcErr := wc.service.RemoveItem(c.Request.Context(), userID, itemID); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// MoveToCart handles POST /wishlist/:id/cart.
func (wc *WishlistController) MoveToCart(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist item ID"})
		return
	}

	line, svcErr := wc.service.MoveToCart(c.Request.Context(), userID, itemID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": line, "message": "Item added to cart"})
}
