package database

import (
	"database/sql"
	"fmt"
	"time"

	"inventory-sync/config"
	"inventory-sync/internal/model"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// NewConnection opens the relational store and tunes its pool. It does not touch
// the schema; run Migrate once at deploy time.
func NewConnection(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if cfg.LogQueries {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var db *gorm.DB
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(dialector, gormCfg)
		if err == nil {
			break
		}
		log.Warn("Failed to connect to database, retrying", zap.Int("attempt", i+1), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.Driver == DriverSQLite {
		// SQLite has a single writer; one connection serializes transactions.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
		sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Second)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case DriverSQLite:
		return sqlite.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// TxOptions maps the configured isolation level for the transaction manager. It
// returns nil for the driver default and for SQLite, which has a single writer.
func TxOptions(cfg config.DatabaseConfig) (*sql.TxOptions, error) {
	if cfg.Driver == DriverSQLite {
		return nil, nil
	}
	switch cfg.IsolationLevel {
	case "":
		return nil, nil
	case "read_committed":
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}, nil
	case "repeatable_read":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead}, nil
	case "serializable":
		return &sql.TxOptions{Isolation: sql.LevelSerializable}, nil
	default:
		return nil, fmt.Errorf("unsupported isolation level %q", cfg.IsolationLevel)
	}
}

// Migrate creates or updates the schema the core relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.InventoryItem{},
		&model.VariationStock{},
		&model.Order{},
		&model.AlertRecord{},
		&model.NotificationLog{},
		&model.ChangeLogRecord{},
		&model.InventoryLogEntry{},
	)
}

// NewSQLX wraps the pool behind db for hand-written read queries.
func NewSQLX(db *gorm.DB, driver string) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	name := driver
	if driver == DriverSQLite {
		name = "sqlite3"
	}
	return sqlx.NewDb(sqlDB, name), nil
}
