package repository

import (
	"context"
	"errors"

	"inventory-sync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderFilter struct {
	InventoryID uint
	Status      string
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id uint) (*model.Order, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	List(ctx context.Context, page, limit int, filter OrderFilter) ([]model.Order, int64, error)
	ReservedQuantity(ctx context.Context, key model.StockKey) (int, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	if order.ConfirmationStatus == "" {
		order.ConfirmationStatus = model.OrderStatusPending
	}
	return GetDB(ctx, r.db).Create(order).Error
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	res := GetDB(ctx, r.db).Model(&model.Order{}).Where("id = ?", id).Update("confirmation_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	return nil
}

func (r *orderRepository) List(ctx context.Context, page, limit int, filter OrderFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Order{})
	if filter.InventoryID != 0 {
		db = db.Where("inventory_id = ?", filter.InventoryID)
	}
	if filter.Status != "" {
		db = db.Where("confirmation_status = ?", filter.Status)
	}
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ReservedQuantity sums the quantity held by reserving orders on one pool. The
// base pool covers every unit type of the item.
func (r *orderRepository) ReservedQuantity(ctx context.Context, key model.StockKey) (int, error) {
	var total int64
	db := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("inventory_id = ? AND variation = ?", key.InventoryID, key.Variation).
		Where("confirmation_status NOT IN ?", model.NonReservingStatuses)
	if !key.IsBase() {
		db = db.Where("unit_type = ?", model.NormalizeUnitType(key.UnitType))
	}
	if err := db.Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}
