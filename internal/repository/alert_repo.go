package repository

import (
	"context"
	"errors"
	"time"

	"inventory-sync/internal/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	FindOpen(ctx context.Context, itemID uint, variation, alertType string) (*model.AlertRecord, error)
	Create(ctx context.Context, alert *model.AlertRecord) error
	FindByID(ctx context.Context, id uint) (*model.AlertRecord, error)
	ResolveOpen(ctx context.Context, itemID uint, variation string, types []string, resolvedBy string, at time.Time) (int64, error)
	ResolveByID(ctx context.Context, id uint, resolvedBy string, at time.Time) error
	ListOpen(ctx context.Context, page, limit int) ([]model.AlertRecord, int64, error)
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

// FindOpen returns the unresolved alert for the triple, or nil when there is none.
func (r *alertRepository) FindOpen(ctx context.Context, itemID uint, variation, alertType string) (*model.AlertRecord, error) {
	var alerts []model.AlertRecord
	err := GetDB(ctx, r.db).
		Where("inventory_id = ? AND variation = ? AND alert_type = ? AND is_resolved = ?", itemID, variation, alertType, false).
		Order("alert_date desc").
		Limit(1).
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	if len(alerts) == 0 {
		return nil, nil
	}
	return &alerts[0], nil
}

func (r *alertRepository) Create(ctx context.Context, alert *model.AlertRecord) error {
	return GetDB(ctx, r.db).Create(alert).Error
}

func (r *alertRepository) FindByID(ctx context.Context, id uint) (*model.AlertRecord, error) {
	var alert model.AlertRecord
	if err := GetDB(ctx, r.db).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// ResolveOpen closes every unresolved alert of the given types for (item, variation).
func (r *alertRepository) ResolveOpen(ctx context.Context, itemID uint, variation string, types []string, resolvedBy string, at time.Time) (int64, error) {
	res := GetDB(ctx, r.db).Model(&model.AlertRecord{}).
		Where("inventory_id = ? AND variation = ? AND is_resolved = ?", itemID, variation, false).
		Where("alert_type IN ?", types).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
			"resolved_by": resolvedBy,
		})
	return res.RowsAffected, res.Error
}

func (r *alertRepository) ResolveByID(ctx context.Context, id uint, resolvedBy string, at time.Time) error {
	res := GetDB(ctx, r.db).Model(&model.AlertRecord{}).
		Where("id = ? AND is_resolved = ?", id, false).
		Updates(map[string]interface{}{
			"is_resolved": true,
			"resolved_at": at,
			"resolved_by": resolvedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either missing or already resolved; resolving twice is not an error.
		_, err := r.FindByID(ctx, id)
		return err
	}
	return nil
}

func (r *alertRepository) ListOpen(ctx context.Context, page, limit int) ([]model.AlertRecord, int64, error) {
	var alerts []model.AlertRecord
	var total int64

	db := GetDB(ctx, r.db).Model(&model.AlertRecord{}).Where("is_resolved = ?", false)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("alert_date desc, id desc").Offset(offset).Limit(limit).Find(&alerts).Error; err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}
