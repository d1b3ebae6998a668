package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
)

const (
	freeShippingThreshold = 1000.0
	flatShippingRate      = 25.0
	taxRate               = 0.08

	// Rings are sized; a cart line for a ring must carry one.
	sizedCategory = "rings"
)

// CartService manages a user's cart lines and computes the order summary.
type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, *ServiceError)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, *ServiceError)
	UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) *ServiceError
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) *ServiceError
	ClearCart(ctx context.Context, userID uuid.UUID) *ServiceError
}

type cartServiceImpl struct {
	carts    repository.CartRepo
	products repository.ProductRepo
	logger   *zap.Logger
}

func NewCartService(carts repository.CartRepo, products repository.ProductRepo, logger *zap.Logger) CartService {
	return &cartServiceImpl{
		carts:    carts,
		products: products,
		logger:   logger,
	}
}

func (s *cartServiceImpl) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, *ServiceError) {
	items, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch cart", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch cart")
	}

	return &models.Cart{
		Items:   items,
		Summary: Summarize(items),
	}, nil
}

// AddItem merges into an existing line with the same product and size, or
// inserts a new line with the product's current name, image and price.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddCartItemRequest) (*models.CartItem, *ServiceError) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		s.logger.Error("Failed to fetch product for cart add", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}
	if product == nil {
		return nil, errNotFound("Product not found")
	}

	size := normalizeSize(req.Size)
	if product.Category == sizedCategory && size == nil {
		return nil, errBadRequest("Please select a ring size")
	}

	existing, err := s.carts.FindByProductAndSize(ctx, userID, req.ProductID, size)
	if err != nil {
		s.logger.Error("Failed to look up cart line", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}

	if existing != nil {
		existing.Quantity += req.Quantity
		if err := s.carts.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity); err != nil {
			s.logger.Error("Failed to update cart line quantity", zap.Error(err))
			return nil, errInternal("Failed to add item to cart")
		}
		return existing, nil
	}

	item := &models.CartItem{
		ID:        uuid.New(),
		UserID:    userID,
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.PrimaryImage(),
		Price:     product.Price,
		Quantity:  req.Quantity,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.carts.Insert(ctx, item); err != nil {
		s.logger.Error("Failed to insert cart line", zap.Error(err))
		return nil, errInternal("Failed to add item to cart")
	}
	return item, nil
}

// UpdateQuantity sets the line quantity; zero or negative removes the line.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID, itemID uuid.UUID, quantity int) *ServiceError {
	if quantity <= 0 {
		return s.RemoveItem(ctx, userID, itemID)
	}

	item, err := s.carts.FindByID(ctx, userID, itemID)
	if err != nil {
		s.logger.Error("Failed to look up cart line", zap.Error(err))
		return errInternal("Failed to update cart")
	}
	if item == nil {
		return errNotFound("Cart item not found")
	}

	if err := s.carts.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		s.logger.Error("Failed to update cart line quantity", zap.Error(err))
		return errInternal("Failed to update cart")
	}
	return nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) *ServiceError {
	item, err := s.carts.FindByID(ctx, userID, itemID)
	if err != nil {
		s.logger.Error("Failed to look up cart line", zap.Error(err))
		return errInternal("Failed to update cart")
	}
	if item == nil {
		return errNotFound("Cart item not found")
	}

	if err := s.carts.Delete(ctx, userID, itemID); err != nil {
		s.logger.Error("Failed to delete cart line", zap.Error(err))
		return errInternal("Failed to update cart")
	}
	return nil
}

func (s *cartServiceImpl) ClearCart(ctx context.Context, userID uuid.UUID) *ServiceError {
	if err := s.carts.DeleteAll(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return errInternal("Failed to clear cart")
	}
	return nil
}

// Summarize computes the order-summary box from the cart lines. Shipping is
// free above the threshold, otherwise flat rate; tax applies to the subtotal.
func Summarize(items []models.CartItem) models.CartSummary {
	var subtotal float64
	for i := range items {
		subtotal += items[i].LineTotal()
	}

	shipping := flatShippingRate
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * taxRate

	return models.CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// normalizeSize treats an empty size the same as no size, matching how the
// storefront stores size-less lines.
func normalizeSize(size *string) *string {
	if size == nil || *size == "" {
		return nil
	}
	return size
}
