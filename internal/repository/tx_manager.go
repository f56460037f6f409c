package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "gorm_tx"

// TransactionManager manages database transactions via context injection.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db   *gorm.DB
	opts *sql.TxOptions
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

// NewTransactionManagerWithOptions lets callers pick an isolation level.
func NewTransactionManagerWithOptions(db *gorm.DB, opts *sql.TxOptions) TransactionManager {
	return &transactionManager{db: db, opts: opts}
}

// RunInTx runs fn inside a transaction. A call made while a transaction is already
// carried by ctx joins it instead of opening a nested one, so repositories and
// services compose without knowing who owns the boundary.
func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}
	var opts []*sql.TxOptions
	if t.opts != nil {
		opts = append(opts, t.opts)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, txKey, tx)
		return fn(txCtx)
	}, opts...)
}

// InTx reports whether ctx carries an open transaction.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(*gorm.DB)
	return ok
}

// GetDB extracts the transaction DB from context if present, otherwise returns root DB.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
