package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	"inventory-sync/config"
	"inventory-sync/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewConnection_SQLiteAndMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "core.db"),
	}

	db, err := NewConnection(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, table := range []interface{}{
		&model.InventoryItem{},
		&model.VariationStock{},
		&model.Order{},
		&model.AlertRecord{},
		&model.ChangeLogRecord{},
		&model.InventoryLogEntry{},
	} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&model.VariationStock{}, "idx_variation_key"))

	// Migrate is safe to run again on an existing schema.
	require.NoError(t, Migrate(db))
}

func TestNewConnection_UnknownDriver(t *testing.T) {
	_, err := NewConnection(config.DatabaseConfig{Driver: "oracle"}, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewSQLX_DriverName(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "core.db"),
	}
	db, err := NewConnection(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	x, err := NewSQLX(db, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", x.DriverName())
	assert.Equal(t, "SELECT ? ", x.Rebind("SELECT ? "))
}

func TestTxOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatabaseConfig
		want    *sql.TxOptions
		wantErr bool
	}{
		{name: "driver default", cfg: config.DatabaseConfig{Driver: DriverMySQL}},
		{name: "sqlite ignores level", cfg: config.DatabaseConfig{Driver: DriverSQLite, IsolationLevel: "serializable"}},
		{
			name: "read committed",
			cfg:  config.DatabaseConfig{Driver: DriverMySQL, IsolationLevel: "read_committed"},
			want: &sql.TxOptions{Isolation: sql.LevelReadCommitted},
		},
		{
			name: "serializable",
			cfg:  config.DatabaseConfig{Driver: DriverPostgres, IsolationLevel: "serializable"},
			want: &sql.TxOptions{Isolation: sql.LevelSerializable},
		},
		{name: "unknown", cfg: config.DatabaseConfig{Driver: DriverPostgres, IsolationLevel: "dirty"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TxOptions(tt.cfg)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported isolation level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
