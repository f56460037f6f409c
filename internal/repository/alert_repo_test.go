package repository

import (
	"context"
	"testing"
	"time"

	"inventory-sync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertRepository_OpenAndResolve(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAlertRepository(db)
	now := time.Now().UTC()

	open, err := repo.FindOpen(ctx, 1, "", model.AlertLowStock)
	require.NoError(t, err)
	assert.Nil(t, open)

	alert := &model.AlertRecord{InventoryID: 1, AlertType: model.AlertLowStock, Quantity: 2, Threshold: 3, AlertDate: now}
	require.NoError(t, repo.Create(ctx, alert))
	require.NoError(t, repo.Create(ctx, &model.AlertRecord{InventoryID: 1, Variation: "Red", AlertType: model.AlertOutOfStock, AlertDate: now}))

	open, err = repo.FindOpen(ctx, 1, "", model.AlertLowStock)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, alert.ID, open.ID)

	list, total, err := repo.ListOpen(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)

	n, err := repo.ResolveOpen(ctx, 1, "", []string{model.AlertLowStock, model.AlertOutOfStock}, "system:system", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "only the base pool alert is resolved")

	open, err = repo.FindOpen(ctx, 1, "", model.AlertLowStock)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestAlertRepository_ResolveByID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewAlertRepository(db)
	alert := &model.AlertRecord{InventoryID: 2, AlertType: model.AlertReorder, AlertDate: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, alert))

	require.NoError(t, repo.ResolveByID(ctx, alert.ID, "admin:1", time.Now().UTC()))
	require.NoError(t, repo.ResolveByID(ctx, alert.ID, "admin:1", time.Now().UTC()), "resolving twice is a no-op")
	assert.ErrorIs(t, repo.ResolveByID(ctx, 999, "admin:1", time.Now().UTC()), ErrAlertNotFound)

	got, err := repo.FindByID(ctx, alert.ID)
	require.NoError(t, err)
	assert.True(t, got.IsResolved)
	assert.Equal(t, "admin:1", got.ResolvedBy)
	require.NotNil(t, got.ResolvedAt)
}

func TestNotificationRepository_SentSince(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewNotificationRepository(db)
	now := time.Now().UTC()

	sent, err := repo.SentSince(ctx, "owner", "1::out_of_stock", now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, repo.Create(ctx, &model.NotificationLog{Recipient: "owner", AlertKey: "1::out_of_stock", SentAt: now.Add(-10 * time.Minute)}))

	sent, err = repo.SentSince(ctx, "owner", "1::out_of_stock", now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.True(t, sent)

	sent, err = repo.SentSince(ctx, "owner", "1::out_of_stock", now.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.False(t, sent)
}
