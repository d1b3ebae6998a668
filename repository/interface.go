package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/solvera/storefront-api/models"
)

// ProductRepo reads the shared product catalog. The storefront never writes
// products.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// UserRepo manages account documents.
type UserRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
}

// CartRepo manages a user's cart lines. Find methods return (nil, nil) when
// no document matches.
type CartRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	FindByProductAndSize(ctx context.Context, userID, productID uuid.UUID, size *string) (*models.CartItem, error)
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

// WishlistRepo manages a user's saved products.
type WishlistRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	FindByProduct(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, error)
	FindByID(ctx context.Context, userID, itemID uuid.UUID) (*models.WishlistItem, error)
	Insert(ctx context.Context, item *models.WishlistItem) error
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
}

// OrderRepo reads a user's order history. Orders are written by the
// fulfilment pipeline, not by the storefront.
type OrderRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByID(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, error)
}
