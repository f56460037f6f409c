package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory log actions
const (
	ActionStockIn          = "stock_in"
	ActionStockOut         = "stock_out"
	ActionAdjustment       = "adjustment"
	ActionOrderPlaced      = "order_placed"
	ActionDeliveryReceived = "delivery_received"
	ActionSaleCompleted    = "sale_completed"
)

// Actor is whoever triggered a mutation. It is passed explicitly into every
// sync operation and stamped on audit entries and change records.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// SystemActor is used for mutations not triggered by a user (listeners, jobs).
var SystemActor = Actor{ID: "system", Role: "system"}

func (a Actor) String() string {
	if a.Role == "" {
		return a.ID
	}
	return a.Role + ":" + a.ID
}

// InventoryLogEntry is the append-only audit record of one ledger mutation.
type InventoryLogEntry struct {
	ID                 uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	InventoryID        uint      `gorm:"not null;index" json:"inventory_id"`
	Variation          string    `gorm:"type:varchar(191);not null;default:''" json:"variation"`
	UnitType           string    `gorm:"type:varchar(32);not null" json:"unit_type"`
	Action             string    `gorm:"type:varchar(30);not null;index" json:"action"`
	QuantityBefore     int       `gorm:"type:int;not null" json:"quantity_before"`
	QuantityChange     int       `gorm:"type:int;not null" json:"quantity_change"`
	QuantityAfter      int       `gorm:"type:int;not null" json:"quantity_after"`
	OrderID            *uint     `gorm:"index" json:"order_id"`
	DeliveryID         *uint     `gorm:"index" json:"delivery_id"`
	SalesTransactionID *uint     `gorm:"index" json:"sales_transaction_id"`
	// CorrelationKey is "action:id" for entries written under the replay guard.
	// The unique index rejects a second mutation for the same retry.
	CorrelationKey     *string   `gorm:"type:varchar(96);uniqueIndex" json:"-"`
	UserID             string    `gorm:"type:varchar(64)" json:"user_id"`
	UserRole           string    `gorm:"type:varchar(32)" json:"user_role"`
	Note               string    `gorm:"type:text" json:"note"`
	CreatedAt          time.Time `gorm:"index" json:"created_at"`
}

func (e *InventoryLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
