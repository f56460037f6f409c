package service

import (
	"context"
	"time"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"go.uber.org/zap"
)

// Notifier delivers a message to one recipient. Transports (SMS, email) live
// behind this interface.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}

// LogNotifier is the default transport: it only writes the message to the log.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, recipient, message string) error {
	n.log.Info("Notification sent", zap.String("recipient", recipient), zap.String("message", message))
	return nil
}

// NotificationDeduper claims the right to notify recipient about alertKey. It
// returns false when a notification was already claimed within window. Release
// gives a claim back after a failed send so the next evaluation retries.
type NotificationDeduper interface {
	Acquire(ctx context.Context, recipient, alertKey, message string, window time.Duration) (bool, error)
	Release(ctx context.Context, recipient, alertKey string, window time.Duration) error
}

type dbDeduper struct {
	repo repository.NotificationRepository
	now  func() time.Time
}

// NewDBDeduper keeps the window in the notification_logs table. Check and insert
// are two statements, so callers serialize per alert (the alert engine holds the
// ledger row lock while acquiring).
func NewDBDeduper(repo repository.NotificationRepository) NotificationDeduper {
	return &dbDeduper{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (d *dbDeduper) Acquire(ctx context.Context, recipient, alertKey, message string, window time.Duration) (bool, error) {
	now := d.now()
	sent, err := d.repo.SentSince(ctx, recipient, alertKey, now.Add(-window))
	if err != nil {
		return false, err
	}
	if sent {
		return false, nil
	}
	err = d.repo.Create(ctx, &model.NotificationLog{
		Recipient: recipient,
		AlertKey:  alertKey,
		Message:   message,
		SentAt:    now,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Release drops the claim. Acquire only succeeds when nothing was sent within
// window, so the only row in that range is the one being released.
func (d *dbDeduper) Release(ctx context.Context, recipient, alertKey string, window time.Duration) error {
	return d.repo.DeleteSince(ctx, recipient, alertKey, d.now().Add(-window))
}
