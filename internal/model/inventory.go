package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unit types a stock row can be counted in.
const (
	UnitPerPiece = "per piece"
	UnitPerKilo  = "per kilo"
	UnitPerGram  = "per gram"
	UnitPerLiter = "per liter"
	UnitPerMeter = "per meter"
	UnitPerBox   = "per box"
	UnitPerPack  = "per pack"
	UnitPerDozen = "per dozen"
	UnitPerSet   = "per set"
	UnitPerRoll  = "per roll"
)

var unitTypes = map[string]struct{}{
	UnitPerPiece: {}, UnitPerKilo: {}, UnitPerGram: {}, UnitPerLiter: {}, UnitPerMeter: {},
	UnitPerBox: {}, UnitPerPack: {}, UnitPerDozen: {}, UnitPerSet: {}, UnitPerRoll: {},
}

// IsValidUnitType reports whether u belongs to the fixed unit type set.
func IsValidUnitType(u string) bool {
	_, ok := unitTypes[u]
	return ok
}

// NormalizeUnitType maps the empty string to the default unit.
func NormalizeUnitType(u string) string {
	if u == "" {
		return UnitPerPiece
	}
	return u
}

// BaseVariation is the variation name used for the item's own stock pool.
const BaseVariation = ""

// InventoryItem is a stocked product. Quantity is the base stock pool and is only
// changed through the stock ledger.
type InventoryItem struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity         int             `gorm:"type:int;default:0;not null;check:chk_inventory_items_quantity,quantity >= 0" json:"quantity"`
	ReorderThreshold int             `gorm:"type:int;default:0;not null" json:"reorder_threshold"`
	UnitType         string          `gorm:"type:varchar(32);default:'per piece';not null" json:"unit_type"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	SupplierID       *uint           `gorm:"index" json:"supplier_id"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

// VariationStock is a named sub-SKU of an item with its own quantity and price.
// At most one row exists per (inventory_id, variation, unit_type).
type VariationStock struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	InventoryID uint                `gorm:"not null;uniqueIndex:idx_variation_key,priority:1" json:"inventory_id"`
	Variation   string              `gorm:"type:varchar(191);not null;uniqueIndex:idx_variation_key,priority:2" json:"variation"`
	UnitType    string              `gorm:"type:varchar(32);not null;uniqueIndex:idx_variation_key,priority:3" json:"unit_type"`
	Quantity    int                 `gorm:"type:int;default:0;not null;check:chk_variation_stocks_quantity,quantity >= 0" json:"quantity"`
	UnitPrice   decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"unit_price"`
	LastUpdated time.Time           `json:"last_updated"`
}

// StockKey identifies one stock pool. Variation == BaseVariation addresses the item itself.
type StockKey struct {
	InventoryID uint   `json:"inventory_id"`
	Variation   string `json:"variation"`
	UnitType    string `json:"unit_type"`
}

func (k StockKey) IsBase() bool {
	return k.Variation == BaseVariation
}
