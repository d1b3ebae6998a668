package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/solvera/storefront-api/models"
	"github.com/solvera/storefront-api/repository"
)

// OrderService exposes a user's order history. The storefront is read-only
// here; orders are written by the fulfilment pipeline.
type OrderService interface {
	ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *ServiceError)
}

type orderServiceImpl struct {
	orders repository.OrderRepo
	logger *zap.Logger
}

func NewOrderService(orders repository.OrderRepo, logger *zap.Logger) OrderService {
	return &orderServiceImpl{
		orders: orders,
		logger: logger,
	}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, userID uuid.UUID) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch orders")
	}
	return orders, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.orders.FindByID(ctx, userID, orderID)
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, errInternal("Failed to fetch order")
	}
	if order == nil {
		return nil, errNotFound("Order not found")
	}
	return order, nil
}
