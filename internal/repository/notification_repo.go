package repository

import (
	"context"
	"time"

	"inventory-sync/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	SentSince(ctx context.Context, recipient, alertKey string, since time.Time) (bool, error)
	Create(ctx context.Context, entry *model.NotificationLog) error
	DeleteSince(ctx context.Context, recipient, alertKey string, since time.Time) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) SentSince(ctx context.Context, recipient, alertKey string, since time.Time) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.NotificationLog{}).
		Where("recipient = ? AND alert_key = ? AND sent_at >= ?", recipient, alertKey, since).
		Count(&count).Error
	return count > 0, err
}

func (r *notificationRepository) Create(ctx context.Context, entry *model.NotificationLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *notificationRepository) DeleteSince(ctx context.Context, recipient, alertKey string, since time.Time) error {
	return GetDB(ctx, r.db).
		Where("recipient = ? AND alert_key = ? AND sent_at >= ?", recipient, alertKey, since).
		Delete(&model.NotificationLog{}).Error
}
