package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a user's cart. Product name, image and price are
// denormalized onto the line at add time, matching the document layout the
// storefront reads back for rendering.
type CartItem struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	UserID    uuid.UUID `json:"-" bson:"user_id"`
	ProductID uuid.UUID `json:"product_id" bson:"product_id"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image" bson:"image"`
	Price     float64   `json:"price" bson:"price"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Size      *string   `json:"size" bson:"size"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// LineTotal is the extended price of the line.
func (i *CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// CartSummary mirrors the order-summary box: free shipping over $1000,
// otherwise a $25 flat rate, and 8% tax on the subtotal.
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Cart is the full cart view returned by GET /cart.
type Cart struct {
	Items   []CartItem  `json:"items"`
	Summary CartSummary `json:"summary"`
}

// AddCartItemRequest is the payload for POST /cart.
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Size      *string   `json:"size"`
}

// UpdateCartItemRequest is the payload for PATCH /cart/:id. A quantity of
// zero or less removes the line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
