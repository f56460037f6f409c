package repository

import (
	"context"
	"errors"
	"strings"

	"inventory-sync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.InventoryItem, error)
	FindByIDs(ctx context.Context, ids []uint) ([]model.InventoryItem, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.InventoryItem, error)
	List(ctx context.Context, page, limit int, search string) ([]model.InventoryItem, int64, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.InventoryItem) error {
	return GetDB(ctx, r.db).Create(item).Error
}

// Update writes catalog fields only. Quantity belongs to the stock ledger and is
// never overwritten from here.
func (r *itemRepository) Update(ctx context.Context, item *model.InventoryItem) error {
	res := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
		Where("id = ?", item.ID).
		Select("name", "reorder_threshold", "unit_type", "unit_price", "supplier_id").
		Updates(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		_, err := r.FindByID(ctx, item.ID)
		return err
	}
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	res := GetDB(ctx, r.db).Where("id = ?", id).Delete(&model.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := GetDB(ctx, r.db).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByIDs(ctx context.Context, ids []uint) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	if len(ids) == 0 {
		return items, nil
	}
	err := GetDB(ctx, r.db).Where("id IN ?", ids).Order("id").Find(&items).Error
	return items, err
}

func (r *itemRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.InventoryItem, error) {
	var item model.InventoryItem
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) List(ctx context.Context, page, limit int, search string) ([]model.InventoryItem, int64, error) {
	var items []model.InventoryItem
	var total int64

	db := GetDB(ctx, r.db).Model(&model.InventoryItem{})
	if search != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc, id desc").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
