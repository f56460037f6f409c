package repository

import (
	"context"
	"fmt"

	"inventory-sync/internal/model"

	"github.com/jmoiron/sqlx"
)

// PoolQuantity is a ledger or reserved quantity for one stock pool.
type PoolQuantity struct {
	InventoryID uint   `db:"inventory_id"`
	Variation   string `db:"variation"`
	UnitType    string `db:"unit_type"`
	Quantity    int    `db:"quantity"`
}

// AvailabilityRepository reads ledger and reservation totals with hand-written
// SQL. It never joins a write transaction.
type AvailabilityRepository interface {
	LedgerQuantities(ctx context.Context, itemIDs []uint) ([]PoolQuantity, error)
	ReservedQuantities(ctx context.Context, itemIDs []uint) ([]PoolQuantity, error)
}

type availabilityRepository struct {
	db *sqlx.DB
}

func NewAvailabilityRepository(db *sqlx.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

// LedgerQuantities returns base pools (variation "") and every variation row of
// the given live items.
func (r *availabilityRepository) LedgerQuantities(ctx context.Context, itemIDs []uint) ([]PoolQuantity, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT id AS inventory_id, '' AS variation, unit_type, quantity
		FROM inventory_items
		WHERE id IN (?) AND deleted_at IS NULL
		UNION ALL
		SELECT v.inventory_id, v.variation, v.unit_type, v.quantity
		FROM variation_stocks v
		JOIN inventory_items i ON i.id = v.inventory_id AND i.deleted_at IS NULL
		WHERE v.inventory_id IN (?)`, itemIDs, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("build ledger query: %w", err)
	}

	var rows []PoolQuantity
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select ledger quantities: %w", err)
	}
	return rows, nil
}

// ReservedQuantities sums order quantities per pool, counting every status
// except the non-reserving ones.
func (r *availabilityRepository) ReservedQuantities(ctx context.Context, itemIDs []uint) ([]PoolQuantity, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT inventory_id, variation, unit_type, COALESCE(SUM(quantity), 0) AS quantity
		FROM orders
		WHERE inventory_id IN (?) AND confirmation_status NOT IN (?)
		GROUP BY inventory_id, variation, unit_type`, itemIDs, model.NonReservingStatuses)
	if err != nil {
		return nil, fmt.Errorf("build reservation query: %w", err)
	}

	var rows []PoolQuantity
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("select reserved quantities: %w", err)
	}
	return rows, nil
}
