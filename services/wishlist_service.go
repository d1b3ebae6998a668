package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
)

// WishlistService manages saved products. Adds are idempotent per product:
// adding a product already on the wishlist returns the existing entry.
type WishlistService interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, *ServiceError)
	AddItem(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, bool, *ServiceError)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) *ServiceError
	MoveToCart(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, *ServiceError)
}

type wishlistServiceImpl struct {
	wishlists repository.WishlistRepo
	carts     repository.CartRepo
	products  repository.ProductRepo
	logger    *zap.Logger
}

func NewWishlistService(
	wishlists repository.WishlistRepo,
	carts repository.CartRepo,
	products repository.ProductRepo,
	logger *zap.Logger,
) WishlistService {
	return &wishlistServiceImpl{
		wishlists: wishlists,
		carts:     carts,
		products:  products,
		logger:    logger,
	}
}

func (s *wishlistServiceImpl) ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, *ServiceError) {
	items, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch wishlist", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch wishlist")
	}
	return items, nil
}

// AddItem saves a product to the wishlist. The second return value reports
// whether a new entry was created; false means the product was already saved.
func (s *wishlistServiceImpl) AddItem(ctx context.Context, userID, productID uuid.UUID) (*models.WishlistItem, bool, *ServiceError) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		s.logger.Error("Failed to fetch product for wishlist add", zap.Error(err))
		return nil, false, errInternal("Failed to add item to wishlist")
	}
	if product == nil {
		return nil, false, errNotFound("Product not found")
	}

	existing, err := s.wishlists.FindByProduct(ctx, userID, productID)
	if err != nil {
		s.logger.Error("Failed to look up wishlist entry", zap.Error(err))
		return nil, false, errInternal("Failed to add item to wishlist")
	}
	if existing != nil {
		return existing, false, nil
	}

	item := &models.WishlistItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.PrimaryImage(),
		Price:     product.Price,
		Category:  product.Category,
		AddedAt:   time.Now().UTC(),
	}
	if err := s.wishlists.Insert(ctx, item); err != nil {
		s.logger.Error("Failed to insert wishlist entry", zap.Error(err))
		return nil, false, errInternal("Failed to add item to wishlist")
	}
	return item, true, nil
}

func (s *wishlistServiceImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) *ServiceError {
	item, err := s.wishlists.FindByID(ctx, userID, itemID)
	if err != nil {
		s.logger.Error("Failed to look up wishlist entry", zap.Error(err))
		return errInternal("Failed to update wishlist")
	}
	if item == nil {
		return errNotFound("Wishlist item not found")
	}

	if err := s.wishlists.Delete(ctx, userID, itemID); err != nil {
		s.logger.Error("Failed to delete wishlist entry", zap.Error(err))
		return errInternal("Failed to update wishlist")
	}
	return nil
}

// MoveToCart copies a wishlist entry into the cart as a quantity-one,
// size-less line. The wishlist entry is kept; the storefront has always left
// removal as a separate action.
func (s *wishlistServiceImpl) MoveToCart(ctx context.Context, userID, itemID uuid.UUID) (*models.CartItem, *ServiceError) {
	item, err := s.wishlists.FindByID(ctx, userID, itemID)
	if err != nil {
		s.logger.Error("Failed to look up wishlist entry", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}
	if item == nil {
		return nil, errNotFound("Wishlist item not found")
	}

	line := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Image:     item.Image,
		Price:     item.Price,
		Quantity:  1,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.carts.Insert(ctx, line); err != nil {
		s.logger.Error("Failed to insert cart line from wishlist", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}
	return line, nil
}
