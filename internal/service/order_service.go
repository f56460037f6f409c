package service

import (
	"context"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"
)

// OrderService is the read side of orders. Writes go through SyncService.
type OrderService interface {
	GetOrder(ctx context.Context, id uint) (*model.Order, error)
	ListOrders(ctx context.Context, page, limit int, filter repository.OrderFilter) ([]model.Order, int64, error)
}

type orderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*model.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, page, limit int, filter repository.OrderFilter) ([]model.Order, int64, error) {
	if filter.Status != "" && !model.IsValidOrderStatus(filter.Status) {
		return nil, 0, ErrInvalidOrderStatus
	}
	return s.repo.List(ctx, page, limit, filter)
}
