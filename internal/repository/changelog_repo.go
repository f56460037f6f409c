package repository

import (
	"context"
	"errors"
	"time"

	"inventory-sync/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChangeMeta describes the mutation that triggered a version bump.
type ChangeMeta struct {
	Actor     model.Actor
	UnitType  string
	UnitPrice decimal.NullDecimal
	At        time.Time
}

type ChangeLogRepository interface {
	Bump(ctx context.Context, itemID uint, meta ChangeMeta) (int64, error)
	SaveSnapshot(ctx context.Context, itemID uint, variants map[string]model.VariantSnapshot) error
	Get(ctx context.Context, itemID uint) (*model.ChangeLogRecord, error)
	VersionMap(ctx context.Context) (map[uint]int64, error)
	ChangedSince(ctx context.Context, since time.Time) ([]model.ChangeLogRecord, error)
	MarkDeleted(ctx context.Context, itemID uint, at time.Time) error
	LatestMtime(ctx context.Context) (time.Time, error)
}

type changeLogRepository struct {
	db *gorm.DB
}

func NewChangeLogRepository(db *gorm.DB) ChangeLogRepository {
	return &changeLogRepository{db: db}
}

// Bump increments the item's version with a single UPDATE and returns the new
// value. The row is created at version 0 first if absent, so the first bump
// yields 1. Callers must run it inside a transaction for the read-back to see
// their own increment.
func (r *changeLogRepository) Bump(ctx context.Context, itemID uint, meta ChangeMeta) (int64, error) {
	db := GetDB(ctx, r.db)
	seed := model.ChangeLogRecord{InventoryID: itemID, Version: 0, UpdatedAt: meta.At}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	res := db.Model(&model.ChangeLogRecord{}).
		Where("inventory_id = ?", itemID).
		Updates(map[string]interface{}{
			"version":         gorm.Expr("version + ?", 1),
			"changed_by_id":   meta.Actor.ID,
			"changed_by_role": meta.Actor.Role,
			"unit_type":       meta.UnitType,
			"unit_price":      meta.UnitPrice,
			"updated_at":      meta.At,
		})
	if res.Error != nil {
		return 0, res.Error
	}

	var rec model.ChangeLogRecord
	if err := db.Select("inventory_id", "version").First(&rec, "inventory_id = ?", itemID).Error; err != nil {
		return 0, err
	}
	return rec.Version, nil
}

func (r *changeLogRepository) SaveSnapshot(ctx context.Context, itemID uint, variants map[string]model.VariantSnapshot) error {
	rec := model.ChangeLogRecord{Variants: variants}
	return GetDB(ctx, r.db).Model(&model.ChangeLogRecord{}).
		Where("inventory_id = ?", itemID).
		Select("variants").
		Updates(&rec).Error
}

func (r *changeLogRepository) Get(ctx context.Context, itemID uint) (*model.ChangeLogRecord, error) {
	var rec model.ChangeLogRecord
	if err := GetDB(ctx, r.db).First(&rec, "inventory_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *changeLogRepository) VersionMap(ctx context.Context) (map[uint]int64, error) {
	var rows []model.ChangeLogRecord
	if err := GetDB(ctx, r.db).Select("inventory_id", "version").Find(&rows).Error; err != nil {
		return nil, err
	}
	versions := make(map[uint]int64, len(rows))
	for _, row := range rows {
		versions[row.InventoryID] = row.Version
	}
	return versions, nil
}

func (r *changeLogRepository) ChangedSince(ctx context.Context, since time.Time) ([]model.ChangeLogRecord, error) {
	var rows []model.ChangeLogRecord
	err := GetDB(ctx, r.db).
		Where("updated_at > ? AND deleted = ?", since, false).
		Order("inventory_id").
		Find(&rows).Error
	return rows, err
}

// MarkDeleted flags the record without touching its version.
func (r *changeLogRepository) MarkDeleted(ctx context.Context, itemID uint, at time.Time) error {
	res := GetDB(ctx, r.db).Model(&model.ChangeLogRecord{}).
		Where("inventory_id = ?", itemID).
		Updates(map[string]interface{}{"deleted": true, "updated_at": at})
	return res.Error
}

// LatestMtime is the most recent change time across all items, zero when empty.
func (r *changeLogRepository) LatestMtime(ctx context.Context) (time.Time, error) {
	var rows []model.ChangeLogRecord
	err := GetDB(ctx, r.db).Select("inventory_id", "updated_at").
		Order("updated_at desc").Limit(1).Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return time.Time{}, err
	}
	return rows[0].UpdatedAt, nil
}
