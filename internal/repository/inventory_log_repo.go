package repository

import (
	"context"
	"errors"
	"time"

	"inventory-sync/internal/model"

	"gorm.io/gorm"
)

type InventoryLogFilter struct {
	InventoryID uint
	Action      string
	From        *time.Time
	To          *time.Time
}

type InventoryLogRepository interface {
	Create(ctx context.Context, entry *model.InventoryLogEntry) error
	List(ctx context.Context, page, limit int, filter InventoryLogFilter) ([]model.InventoryLogEntry, int64, error)
	FindByCorrelation(ctx context.Context, action string, column string, id uint) (*model.InventoryLogEntry, error)
}

type inventoryLogRepository struct {
	db *gorm.DB
}

func NewInventoryLogRepository(db *gorm.DB) InventoryLogRepository {
	return &inventoryLogRepository{db: db}
}

// Create appends entry. A CorrelationKey that is already taken yields
// ErrDuplicateCorrelation; on Postgres the surrounding transaction is then unusable
// and must be rolled back.
func (r *inventoryLogRepository) Create(ctx context.Context, entry *model.InventoryLogEntry) error {
	err := GetDB(ctx, r.db).Create(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateCorrelation
	}
	return err
}

func (r *inventoryLogRepository) List(ctx context.Context, page, limit int, filter InventoryLogFilter) ([]model.InventoryLogEntry, int64, error) {
	var logs []model.InventoryLogEntry
	var total int64

	db := GetDB(ctx, r.db).Model(&model.InventoryLogEntry{})
	if filter.InventoryID != 0 {
		db = db.Where("inventory_id = ?", filter.InventoryID)
	}
	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.From != nil {
		db = db.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		db = db.Where("created_at <= ?", *filter.To)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Correlation columns accepted by FindByCorrelation.
const (
	CorrelationOrder    = "order_id"
	CorrelationDelivery = "delivery_id"
	CorrelationSale     = "sales_transaction_id"
)

// FindByCorrelation returns the most recent entry recorded for action with the
// given correlation id, or nil when there is none.
func (r *inventoryLogRepository) FindByCorrelation(ctx context.Context, action string, column string, id uint) (*model.InventoryLogEntry, error) {
	switch column {
	case CorrelationOrder, CorrelationDelivery, CorrelationSale:
	default:
		return nil, nil
	}
	var entries []model.InventoryLogEntry
	err := GetDB(ctx, r.db).
		Where("action = ? AND "+column+" = ?", action, id).
		Order("created_at desc").
		Limit(1).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}
