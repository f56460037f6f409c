package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantSnapshot is the state of one variation captured at a version bump.
type VariantSnapshot struct {
	UnitType    string    `json:"unit_type"`
	UnitPrice   *string   `json:"unit_price"`
	Stock       int       `json:"stock"`
	LastUpdated time.Time `json:"last_updated"`
}

// ChangeLogRecord holds the latest version of an item for polling clients.
// All rows together form the inventory_id -> latest_version map.
type ChangeLogRecord struct {
	InventoryID   uint                       `gorm:"primaryKey;autoIncrement:false" json:"inventory_id"`
	Version       int64                      `gorm:"not null;default:0" json:"version"`
	Variants      map[string]VariantSnapshot `gorm:"serializer:json;type:text" json:"variants"`
	UnitType      string                     `gorm:"type:varchar(32)" json:"unit_type"`
	UnitPrice     decimal.NullDecimal        `gorm:"type:decimal(12,2)" json:"unit_price"`
	ChangedByID   string                     `gorm:"type:varchar(64)" json:"changed_by_id"`
	ChangedByRole string                     `gorm:"type:varchar(32)" json:"changed_by_role"`
	Deleted       bool                       `gorm:"not null;default:false" json:"deleted"`
	UpdatedAt     time.Time                  `gorm:"index" json:"updated_at"`
}
