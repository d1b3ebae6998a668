package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem is one saved product in a user's wishlist. At most one entry
// per product exists for a given user.
type WishlistItem struct {
	ID        uuid.UUID `json:"id" bson:"_id"`
	UserID    uuid.UUID `json:"-" bson:"user_id"`
	ProductID uuid.UUID `json:"product_id" bson:"product_id"`
	Name      string    `json:"name" bson:"name"`
	Image     string    `json:"image" bson:"image"`
	Price     float64   `json:"price" bson:"price"`
	Category  string    `json:"category" bson:"category"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
}

// AddWishlistItemRequest is the payload for POST /wishlist.
type AddWishlistItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}
