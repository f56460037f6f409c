package repository

import (
	"context"
	"path/filepath"
	"testing"

	"inventory-sync/config"
	"inventory-sync/internal/database"
	"inventory-sync/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewConnection(config.DatabaseConfig{
		Driver: database.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "repo.db"),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, qty, threshold int) *model.InventoryItem {
	t.Helper()
	item := &model.InventoryItem{
		Name:             name,
		Quantity:         qty,
		ReorderThreshold: threshold,
		UnitType:         model.UnitPerPiece,
		UnitPrice:        decimal.RequireFromString("9.99"),
	}
	require.NoError(t, NewItemRepository(db).Create(context.Background(), item))
	return item
}
