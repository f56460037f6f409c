package model

import "time"

// Order confirmation statuses
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderStatuses = map[string]struct{}{
	OrderStatusPending: {}, OrderStatusConfirmed: {}, OrderStatusCompleted: {},
	OrderStatusDelivered: {}, OrderStatusCancelled: {},
}

func IsValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}

// NonReservingStatuses are excluded from the pending quantity of a stock pool.
var NonReservingStatuses = []string{OrderStatusCancelled, OrderStatusCompleted}

// Order is a customer or staff order against one stock pool.
type Order struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	InventoryID        uint      `gorm:"not null;index:idx_orders_pool,priority:1" json:"inventory_id"`
	Variation          string    `gorm:"type:varchar(191);not null;default:'';index:idx_orders_pool,priority:2" json:"variation"`
	UnitType           string    `gorm:"type:varchar(32);not null" json:"unit_type"`
	Quantity           int       `gorm:"type:int;not null" json:"quantity"`
	ConfirmationStatus string    `gorm:"type:varchar(20);not null;default:'pending';index" json:"confirmation_status"`
	CreatedBy          string    `gorm:"type:varchar(64)" json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsReserving reports whether the order still holds stock for availability purposes.
func (o Order) IsReserving() bool {
	for _, s := range NonReservingStatuses {
		if o.ConfirmationStatus == s {
			return false
		}
	}
	return true
}
