package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory-sync/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StockRepository is the stock ledger. A key with an empty variation addresses the
// item's base quantity; any other key addresses a variation row, which is created
// on the first write that references it.
type StockRepository interface {
	GetStock(ctx context.Context, key model.StockKey) (int, error)
	LockStock(ctx context.Context, key model.StockKey) (int, error)
	IncrementStock(ctx context.Context, key model.StockKey, delta int) (bool, error)
	DecrementStock(ctx context.Context, key model.StockKey, delta int) (bool, error)
	UpdateStock(ctx context.Context, key model.StockKey, value int) error
	CreateVariant(ctx context.Context, key model.StockKey, initialQty int, price decimal.NullDecimal) error
	UpdatePrice(ctx context.Context, key model.StockKey, price decimal.Decimal) error
	GetVariation(ctx context.Context, key model.StockKey) (*model.VariationStock, error)
	ListVariations(ctx context.Context, itemID uint) ([]model.VariationStock, error)
}

type stockRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewStockRepository(db *gorm.DB) StockRepository {
	return &stockRepository{db: db, now: time.Now}
}

// NormalizeKey defaults and validates the unit type of key.
func NormalizeKey(key model.StockKey) (model.StockKey, error) {
	key.UnitType = model.NormalizeUnitType(key.UnitType)
	if !model.IsValidUnitType(key.UnitType) {
		return key, fmt.Errorf("%w: %q", ErrInvalidUnitType, key.UnitType)
	}
	return key, nil
}

var variationKeyColumns = []clause.Column{{Name: "inventory_id"}, {Name: "variation"}, {Name: "unit_type"}}

func (r *stockRepository) variationScope(ctx context.Context, key model.StockKey) *gorm.DB {
	return GetDB(ctx, r.db).Model(&model.VariationStock{}).
		Where("inventory_id = ? AND variation = ? AND unit_type = ?", key.InventoryID, key.Variation, key.UnitType)
}

func (r *stockRepository) GetStock(ctx context.Context, key model.StockKey) (int, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return 0, err
	}
	if key.IsBase() {
		var item model.InventoryItem
		if err := GetDB(ctx, r.db).Select("id", "quantity").First(&item, "id = ?", key.InventoryID).Error; err != nil {
			return 0, mapItemErr(err)
		}
		return item.Quantity, nil
	}

	var row model.VariationStock
	err = r.variationScope(ctx, key).Select("quantity").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Quantity, nil
}

// LockStock reads the quantity with SELECT ... FOR UPDATE. It must run inside a
// transaction for the lock to outlive the statement. A missing variation reads as 0.
func (r *stockRepository) LockStock(ctx context.Context, key model.StockKey) (int, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return 0, err
	}
	locking := clause.Locking{Strength: "UPDATE"}
	if key.IsBase() {
		var item model.InventoryItem
		if err := GetDB(ctx, r.db).Clauses(locking).Select("id", "quantity").
			Where("id = ?", key.InventoryID).First(&item).Error; err != nil {
			return 0, mapItemErr(err)
		}
		return item.Quantity, nil
	}

	var row model.VariationStock
	err = r.variationScope(ctx, key).Clauses(locking).Select("quantity").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return row.Quantity, nil
}

// IncrementStock adds delta. Variation rows are upserted in a single statement so
// concurrent first writes neither duplicate the row nor lose an update.
func (r *stockRepository) IncrementStock(ctx context.Context, key model.StockKey, delta int) (bool, error) {
	if delta <= 0 {
		return false, ErrInvalidQuantity
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return false, err
	}
	if key.IsBase() {
		res := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
			Where("id = ?", key.InventoryID).
			Update("quantity", gorm.Expr("quantity + ?", delta))
		if res.Error != nil {
			return false, res.Error
		}
		if res.RowsAffected == 0 {
			return false, ErrItemNotFound
		}
		return true, nil
	}

	if err := r.ensureItem(ctx, key.InventoryID); err != nil {
		return false, err
	}
	now := r.now()
	row := model.VariationStock{
		InventoryID: key.InventoryID,
		Variation:   key.Variation,
		UnitType:    key.UnitType,
		Quantity:    delta,
		LastUpdated: now,
	}
	err = GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: variationKeyColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":     gorm.Expr("variation_stocks.quantity + ?", delta),
			"last_updated": now,
		}),
	}).Create(&row).Error
	if err != nil {
		return false, err
	}
	return true, nil
}

// DecrementStock subtracts delta only when the current quantity covers it. The
// check and the write are one conditional UPDATE, so concurrent callers can never
// drive a quantity below zero. It returns false when stock is insufficient.
func (r *stockRepository) DecrementStock(ctx context.Context, key model.StockKey, delta int) (bool, error) {
	if delta <= 0 {
		return false, ErrInvalidQuantity
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return false, err
	}

	var res *gorm.DB
	if key.IsBase() {
		res = GetDB(ctx, r.db).Model(&model.InventoryItem{}).
			Where("id = ? AND quantity >= ?", key.InventoryID, delta).
			Update("quantity", gorm.Expr("quantity - ?", delta))
	} else {
		res = r.variationScope(ctx, key).
			Where("quantity >= ?", delta).
			Updates(map[string]interface{}{
				"quantity":     gorm.Expr("quantity - ?", delta),
				"last_updated": r.now(),
			})
	}
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		if key.IsBase() {
			if err := r.ensureItem(ctx, key.InventoryID); err != nil {
				return false, err
			}
		}
		return false, nil
	}
	return true, nil
}

// UpdateStock sets an absolute quantity. It is the manual correction path and
// skips the floor check beyond rejecting negative values.
func (r *stockRepository) UpdateStock(ctx context.Context, key model.StockKey, value int) error {
	if value < 0 {
		return ErrInvalidQuantity
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if key.IsBase() {
		res := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
			Where("id = ?", key.InventoryID).
			Update("quantity", value)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.ensureItem(ctx, key.InventoryID)
		}
		return nil
	}

	if err := r.ensureItem(ctx, key.InventoryID); err != nil {
		return err
	}
	now := r.now()
	row := model.VariationStock{
		InventoryID: key.InventoryID,
		Variation:   key.Variation,
		UnitType:    key.UnitType,
		Quantity:    value,
		LastUpdated: now,
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns: variationKeyColumns,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":     value,
			"last_updated": now,
		}),
	}).Create(&row).Error
}

// CreateVariant creates the variation or, if a concurrent writer got there first,
// updates it to the requested quantity and price.
func (r *stockRepository) CreateVariant(ctx context.Context, key model.StockKey, initialQty int, price decimal.NullDecimal) error {
	if initialQty < 0 {
		return ErrInvalidQuantity
	}
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if key.IsBase() {
		return ErrInvalidVariation
	}
	if err := r.ensureItem(ctx, key.InventoryID); err != nil {
		return err
	}

	now := r.now()
	updates := map[string]interface{}{
		"quantity":     initialQty,
		"last_updated": now,
	}
	if price.Valid {
		updates["unit_price"] = price
	}
	row := model.VariationStock{
		InventoryID: key.InventoryID,
		Variation:   key.Variation,
		UnitType:    key.UnitType,
		Quantity:    initialQty,
		UnitPrice:   price,
		LastUpdated: now,
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   variationKeyColumns,
		DoUpdates: clause.Assignments(updates),
	}).Create(&row).Error
}

func (r *stockRepository) UpdatePrice(ctx context.Context, key model.StockKey, price decimal.Decimal) error {
	key, err := NormalizeKey(key)
	if err != nil {
		return err
	}
	if key.IsBase() {
		res := GetDB(ctx, r.db).Model(&model.InventoryItem{}).
			Where("id = ?", key.InventoryID).
			Update("unit_price", price)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return r.ensureItem(ctx, key.InventoryID)
		}
		return nil
	}

	res := r.variationScope(ctx, key).Updates(map[string]interface{}{
		"unit_price":   decimal.NewNullDecimal(price),
		"last_updated": r.now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVariationNotFound
	}
	return nil
}

func (r *stockRepository) GetVariation(ctx context.Context, key model.StockKey) (*model.VariationStock, error) {
	key, err := NormalizeKey(key)
	if err != nil {
		return nil, err
	}
	var row model.VariationStock
	if err := r.variationScope(ctx, key).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariationNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *stockRepository) ListVariations(ctx context.Context, itemID uint) ([]model.VariationStock, error) {
	var rows []model.VariationStock
	err := GetDB(ctx, r.db).
		Where("inventory_id = ?", itemID).
		Order("variation, unit_type").
		Find(&rows).Error
	return rows, err
}

func (r *stockRepository) ensureItem(ctx context.Context, id uint) error {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.InventoryItem{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}
	return nil
}

func mapItemErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrItemNotFound
	}
	return err
}
