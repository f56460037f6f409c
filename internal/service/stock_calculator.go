package service

import (
	"context"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"
)

// StockCalculator computes available stock: the ledger quantity minus what
// reserving orders hold, floored at zero. It only reads, and must be called
// outside any write transaction.
type StockCalculator interface {
	GetAvailableStock(ctx context.Context, key model.StockKey) (int, error)
	GetAvailableStockBatch(ctx context.Context, keys []model.StockKey) (map[model.StockKey]int, error)
}

type stockCalculator struct {
	repo repository.AvailabilityRepository
}

func NewStockCalculator(repo repository.AvailabilityRepository) StockCalculator {
	return &stockCalculator{repo: repo}
}

func (c *stockCalculator) GetAvailableStock(ctx context.Context, key model.StockKey) (int, error) {
	result, found, err := c.compute(ctx, []model.StockKey{key})
	if err != nil {
		return 0, err
	}
	if !found[key.InventoryID] {
		return 0, repository.ErrItemNotFound
	}
	return result[key], nil
}

// GetAvailableStockBatch answers every key with two queries. Keys of unknown or
// deleted items map to 0.
func (c *stockCalculator) GetAvailableStockBatch(ctx context.Context, keys []model.StockKey) (map[model.StockKey]int, error) {
	result, _, err := c.compute(ctx, keys)
	return result, err
}

type poolKey struct {
	itemID    uint
	variation string
	unitType  string
}

// poolOf maps a key to its ledger pool. The base pool is one per item whatever
// unit type the caller names.
func poolOf(itemID uint, variation, unitType string) poolKey {
	if variation == model.BaseVariation {
		return poolKey{itemID: itemID}
	}
	return poolKey{itemID: itemID, variation: variation, unitType: model.NormalizeUnitType(unitType)}
}

func (c *stockCalculator) compute(ctx context.Context, keys []model.StockKey) (map[model.StockKey]int, map[uint]bool, error) {
	result := make(map[model.StockKey]int, len(keys))
	found := make(map[uint]bool)
	if len(keys) == 0 {
		return result, found, nil
	}

	seen := make(map[uint]struct{}, len(keys))
	ids := make([]uint, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k.InventoryID]; !ok {
			seen[k.InventoryID] = struct{}{}
			ids = append(ids, k.InventoryID)
		}
	}

	ledgerRows, err := c.repo.LedgerQuantities(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	reservedRows, err := c.repo.ReservedQuantities(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	ledger := make(map[poolKey]int, len(ledgerRows))
	for _, row := range ledgerRows {
		if row.Variation == model.BaseVariation {
			found[row.InventoryID] = true
		}
		ledger[poolOf(row.InventoryID, row.Variation, row.UnitType)] += row.Quantity
	}
	reserved := make(map[poolKey]int, len(reservedRows))
	for _, row := range reservedRows {
		reserved[poolOf(row.InventoryID, row.Variation, row.UnitType)] += row.Quantity
	}

	for _, k := range keys {
		pool := poolOf(k.InventoryID, k.Variation, k.UnitType)
		available := ledger[pool] - reserved[pool]
		if available < 0 {
			available = 0
		}
		result[k] = available
	}
	return result, found, nil
}
