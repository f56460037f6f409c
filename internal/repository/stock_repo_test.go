package repository

import (
	"context"
	"sync"
	"testing"

	"inventory-sync/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockRepository_BaseDecrementFloor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Cable", 5, 1)
	repo := NewStockRepository(db)
	key := model.StockKey{InventoryID: item.ID}

	ok, err := repo.DecrementStock(ctx, key, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.DecrementStock(ctx, key, 3)
	require.NoError(t, err)
	assert.False(t, ok, "insufficient stock is a negative result")

	qty, err := repo.GetStock(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 2, qty)
}

func TestStockRepository_DecrementUnknownItem(t *testing.T) {
	db := newTestDB(t)
	_, err := NewStockRepository(db).DecrementStock(context.Background(), model.StockKey{InventoryID: 404}, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestStockRepository_MissingVariationReadsZero(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Wire", 0, 0)
	repo := NewStockRepository(db)
	key := model.StockKey{InventoryID: item.ID, Variation: "Blue/1mm"}

	qty, err := repo.GetStock(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	ok, err := repo.DecrementStock(ctx, key, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStockRepository_RejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Wire", 1, 0)
	repo := NewStockRepository(db)

	_, err := repo.IncrementStock(ctx, model.StockKey{InventoryID: item.ID}, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = repo.DecrementStock(ctx, model.StockKey{InventoryID: item.ID}, -2)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = repo.IncrementStock(ctx, model.StockKey{InventoryID: item.ID, Variation: "A", UnitType: "per bucket"}, 1)
	assert.ErrorIs(t, err, ErrInvalidUnitType)

	_, err = repo.IncrementStock(ctx, model.StockKey{InventoryID: 999, Variation: "A"}, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestStockRepository_ConcurrentCreateOnWrite(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Rope", 0, 0)
	repo := NewStockRepository(db)
	key := model.StockKey{InventoryID: item.ID, Variation: "Red/2mm", UnitType: model.UnitPerMeter}

	var wg sync.WaitGroup
	for _, delta := range []int{7, 11} {
		wg.Add(1)
		go func(d int) {
			defer wg.Done()
			ok, err := repo.IncrementStock(ctx, key, d)
			assert.NoError(t, err)
			assert.True(t, ok)
		}(delta)
	}
	wg.Wait()

	var rows []model.VariationStock
	require.NoError(t, db.Where("inventory_id = ?", item.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 18, rows[0].Quantity)
}

func TestStockRepository_ConcurrentDecrementNeverOversells(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Bolt", 0, 0)
	repo := NewStockRepository(db)
	key := model.StockKey{InventoryID: item.ID, Variation: "M6"}
	_, err := repo.IncrementStock(ctx, key, 20)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.DecrementStock(ctx, key, 3)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	qty, err := repo.GetStock(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, 6, succeeded)
	assert.Equal(t, 20-6*3, qty)
}

func TestStockRepository_UpdateStockAndPrice(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Paint", 4, 0)
	repo := NewStockRepository(db)

	require.NoError(t, repo.UpdateStock(ctx, model.StockKey{InventoryID: item.ID}, 40))
	qty, err := repo.GetStock(ctx, model.StockKey{InventoryID: item.ID})
	require.NoError(t, err)
	assert.Equal(t, 40, qty)

	// Setting the same value again is not a not-found.
	require.NoError(t, repo.UpdateStock(ctx, model.StockKey{InventoryID: item.ID}, 40))
	assert.ErrorIs(t, repo.UpdateStock(ctx, model.StockKey{InventoryID: item.ID}, -1), ErrInvalidQuantity)

	vkey := model.StockKey{InventoryID: item.ID, Variation: "White", UnitType: model.UnitPerLiter}
	assert.ErrorIs(t, repo.UpdatePrice(ctx, vkey, decimal.RequireFromString("3.10")), ErrVariationNotFound)

	require.NoError(t, repo.UpdateStock(ctx, vkey, 9))
	require.NoError(t, repo.UpdatePrice(ctx, vkey, decimal.RequireFromString("3.10")))

	row, err := repo.GetVariation(ctx, vkey)
	require.NoError(t, err)
	assert.Equal(t, 9, row.Quantity)
	require.True(t, row.UnitPrice.Valid)
	assert.True(t, row.UnitPrice.Decimal.Equal(decimal.RequireFromString("3.10")))
}

func TestStockRepository_CreateVariantIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Tile", 0, 0)
	repo := NewStockRepository(db)
	key := model.StockKey{InventoryID: item.ID, Variation: "Grey", UnitType: model.UnitPerBox}
	price := decimal.NewNullDecimal(decimal.RequireFromString("12.50"))

	require.NoError(t, repo.CreateVariant(ctx, key, 5, price))
	require.NoError(t, repo.CreateVariant(ctx, key, 8, decimal.NullDecimal{}))

	rows, err := repo.ListVariations(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 8, rows[0].Quantity)
	assert.True(t, rows[0].UnitPrice.Decimal.Equal(decimal.RequireFromString("12.50")), "price kept when none supplied")

	assert.ErrorIs(t, repo.CreateVariant(ctx, model.StockKey{InventoryID: item.ID}, 1, price), ErrInvalidVariation)
}

func TestStockRepository_LockStockInTx(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	item := seedItem(t, db, "Nut", 6, 0)
	repo := NewStockRepository(db)
	txm := NewTransactionManager(db)

	err := txm.RunInTx(ctx, func(txCtx context.Context) error {
		qty, err := repo.LockStock(txCtx, model.StockKey{InventoryID: item.ID})
		require.NoError(t, err)
		assert.Equal(t, 6, qty)

		qty, err = repo.LockStock(txCtx, model.StockKey{InventoryID: item.ID, Variation: "none"})
		require.NoError(t, err)
		assert.Equal(t, 0, qty)

		_, err = repo.LockStock(txCtx, model.StockKey{InventoryID: 77})
		assert.ErrorIs(t, err, ErrItemNotFound)
		return nil
	})
	require.NoError(t, err)
}
