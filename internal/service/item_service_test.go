package service

import (
	"context"
	"testing"

	"inventory-sync/internal/model"
	"inventory-sync/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateWithOpeningStock(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()

	res, err := env.itemSvc.CreateItem(ctx, CreateItemRequest{
		Name:             "Hammer",
		Quantity:         12,
		ReorderThreshold: 2,
		UnitPrice:        decimal.RequireFromString("19.90"),
	}, staff)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Quantity)
	assert.Equal(t, 12, res.Available)
	assert.Equal(t, model.UnitPerPiece, res.UnitType)
	assert.Equal(t, int64(1), res.Version)

	logs, total, err := env.logs.List(ctx, 1, 10, repository.InventoryLogFilter{InventoryID: res.ID})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, model.ActionStockIn, logs[0].Action)
	assert.Equal(t, 12, logs[0].QuantityAfter)

	_, err = env.itemSvc.CreateItem(ctx, CreateItemRequest{Name: "Bad", UnitType: "per bucket"}, staff)
	assert.ErrorIs(t, err, repository.ErrInvalidUnitType)
}

func TestItemService_UpdateKeepsQuantity(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	item := env.seedItem(t, "Saw", 6, 1)

	res, err := env.itemSvc.UpdateItem(ctx, item.ID, UpdateItemRequest{
		Name:             "Hand saw",
		ReorderThreshold: 3,
		UnitType:         model.UnitPerPiece,
		UnitPrice:        decimal.RequireFromString("22.00"),
	}, staff)
	require.NoError(t, err)
	assert.Equal(t, "Hand saw", res.Name)
	assert.Equal(t, 6, res.Quantity)
	assert.Equal(t, 3, res.ReorderThreshold)

	_, err = env.itemSvc.UpdateItem(ctx, 999, UpdateItemRequest{Name: "x"}, staff)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemService_VariantsAndListing(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	item := env.seedItem(t, "Rope", 4, 0)
	price := decimal.RequireFromString("1.75")

	res, err := env.itemSvc.CreateVariant(ctx, item.ID, CreateVariantRequest{
		Variation: "Red/2mm", UnitType: model.UnitPerMeter, Quantity: 30, UnitPrice: &price,
	}, staff)
	require.NoError(t, err)
	require.Len(t, res.Variations, 1)
	assert.Equal(t, 30, res.Variations[0].Available)
	require.NotNil(t, res.Variations[0].UnitPrice)
	assert.True(t, res.Variations[0].UnitPrice.Equal(price))

	res, err = env.itemSvc.UpdatePrice(ctx, item.ID, UpdatePriceRequest{
		Variation: "Red/2mm", UnitType: model.UnitPerMeter, UnitPrice: decimal.RequireFromString("2.00"),
	}, staff)
	require.NoError(t, err)
	assert.True(t, res.Variations[0].UnitPrice.Equal(decimal.RequireFromString("2.00")))
	assert.Equal(t, int64(2), res.Version)

	list, total, err := env.itemSvc.ListItems(ctx, 1, 10, "ROPE")
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Available)
	assert.Equal(t, int64(2), list[0].Version)
}

func TestItemService_CreateVariantBelowThresholdRaisesAlert(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	item := env.seedItem(t, "Cable", 20, 5)

	_, err := env.itemSvc.CreateVariant(ctx, item.ID, CreateVariantRequest{
		Variation: "Blue/3m", Quantity: 2,
	}, staff)
	require.NoError(t, err)

	alerts := env.openAlerts(t, item.ID)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Blue/3m", alerts[0].Variation)
	assert.Equal(t, model.AlertLowStock, alerts[0].AlertType)
	assert.Equal(t, 2, env.notifier.count(), "critical low stock notifies every recipient")

	_, err = env.itemSvc.CreateVariant(ctx, item.ID, CreateVariantRequest{
		Variation: "Green/3m", Quantity: 50,
	}, staff)
	require.NoError(t, err)
	assert.Len(t, env.openAlerts(t, item.ID), 1)
}

func TestItemService_DeleteMarksChangeLog(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	res, err := env.itemSvc.CreateItem(ctx, CreateItemRequest{Name: "Drill", Quantity: 1}, staff)
	require.NoError(t, err)

	require.NoError(t, env.itemSvc.DeleteItem(ctx, res.ID, staff))
	assert.ErrorIs(t, env.itemSvc.DeleteItem(ctx, res.ID, staff), repository.ErrItemNotFound)

	rec, err := env.changeLog.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.True(t, rec.Deleted)
	assert.Equal(t, int64(1), rec.Version)

	_, err = env.itemSvc.GetItem(ctx, res.ID)
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestItemService_GetStockLevel(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	item := env.seedItem(t, "Rope", 10, 2)

	placed, err := env.sync.PlaceOrder(ctx, PlaceOrderRequest{ItemID: item.ID, Quantity: 4}, staff)
	require.NoError(t, err)
	require.True(t, placed.Accepted)

	level, err := env.itemSvc.GetStockLevel(ctx, model.StockKey{InventoryID: item.ID})
	require.NoError(t, err)
	assert.Equal(t, 10, level.Quantity)
	assert.Equal(t, 6, level.Available)
	assert.Equal(t, model.UnitPerPiece, level.UnitType)

	level, err = env.itemSvc.GetStockLevel(ctx, model.StockKey{InventoryID: item.ID, Variation: "Blue", UnitType: model.UnitPerMeter})
	require.NoError(t, err)
	assert.Zero(t, level.Quantity)
	assert.Zero(t, level.Available)

	_, err = env.itemSvc.GetStockLevel(ctx, model.StockKey{InventoryID: 404})
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
}

func TestOrderService_List(t *testing.T) {
	env := newTestEnv(t, SyncOptions{})
	ctx := context.Background()
	item := env.seedItem(t, "Tape", 10, 0)
	svc := NewOrderService(env.orders)

	first, err := env.sync.PlaceOrder(ctx, PlaceOrderRequest{ItemID: item.ID, Quantity: 1}, staff)
	require.NoError(t, err)
	_, err = env.sync.PlaceOrder(ctx, PlaceOrderRequest{ItemID: item.ID, Quantity: 2}, staff)
	require.NoError(t, err)
	_, err = env.sync.CancelOrder(ctx, first.Order.ID, staff)
	require.NoError(t, err)

	orders, total, err := svc.ListOrders(ctx, 1, 10, repository.OrderFilter{InventoryID: item.ID, Status: model.OrderStatusPending})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].Quantity)

	got, err := svc.GetOrder(ctx, first.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, got.ConfirmationStatus)

	_, _, err = svc.ListOrders(ctx, 1, 10, repository.OrderFilter{Status: "shipped"})
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}
