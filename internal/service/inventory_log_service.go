package service

import (
	"context"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"
)

type InventoryLogService interface {
	GetLogs(ctx context.Context, page, limit int, filter repository.InventoryLogFilter) ([]model.InventoryLogEntry, int64, error)
}

type inventoryLogService struct {
	repo repository.InventoryLogRepository
}

// NewInventoryLogService creates a read-only view over the audit trail.
func NewInventoryLogService(repo repository.InventoryLogRepository) InventoryLogService {
	return &inventoryLogService{repo: repo}
}

func (s *inventoryLogService) GetLogs(ctx context.Context, page, limit int, filter repository.InventoryLogFilter) ([]model.InventoryLogEntry, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.List(ctx, page, limit, filter)
}
