package model

import (
	"fmt"
	"time"
)

const (
	AlertLowStock   = "low_stock"
	AlertOutOfStock = "out_of_stock"
	AlertReorder    = "reorder"
)

// AlertRecord is a stock alert for one (item, variation). Only one unresolved
// record may exist per (inventory_id, variation, alert_type); creation is
// serialized by the ledger row lock.
type AlertRecord struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	InventoryID uint       `gorm:"not null;index:idx_alert_open,priority:1" json:"inventory_id"`
	Variation   string     `gorm:"type:varchar(191);not null;default:'';index:idx_alert_open,priority:2" json:"variation"`
	AlertType   string     `gorm:"type:varchar(20);not null;index:idx_alert_open,priority:3" json:"alert_type"`
	IsResolved  bool       `gorm:"not null;default:false;index:idx_alert_open,priority:4" json:"is_resolved"`
	Quantity    int        `gorm:"type:int;not null" json:"quantity"`
	Threshold   int        `gorm:"type:int;not null" json:"threshold"`
	Message     string     `gorm:"type:varchar(255)" json:"message"`
	AlertDate   time.Time  `gorm:"not null;index" json:"alert_date"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	ResolvedBy  string     `gorm:"type:varchar(64)" json:"resolved_by"`
}

// Key identifies the alert for notification de-duplication.
func (a AlertRecord) Key() string {
	return fmt.Sprintf("%d:%s:%s", a.InventoryID, a.Variation, a.AlertType)
}

// NotificationLog records a sent notification. It backs the cool-down window when
// no Redis instance is configured.
type NotificationLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Recipient string    `gorm:"type:varchar(128);not null;index:idx_notification_lookup,priority:1" json:"recipient"`
	AlertKey  string    `gorm:"type:varchar(255);not null;index:idx_notification_lookup,priority:2" json:"alert_key"`
	Message   string    `gorm:"type:text" json:"message"`
	SentAt    time.Time `gorm:"not null;index:idx_notification_lookup,priority:3" json:"sent_at"`
}
