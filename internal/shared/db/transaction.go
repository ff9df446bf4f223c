// Package db provides transaction scoping for repositories.
package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type txKey struct{}

// TransactionManager runs use case steps inside one database transaction.
// The open transaction travels in the context; repositories pick it up via
// GetTxFromContext so that nested calls share a single commit.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction commits when fn returns nil and rolls back otherwise.
// A context that already carries a transaction is reused, not nested.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// InTransaction reports whether ctx carries an open transaction.
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*gorm.DB)
	return ok
}

// GetTxFromContext returns the transaction from context if available.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}

// ForUpdate adds a row lock when running inside a transaction. Outside one
// the lock would be released immediately, so it is omitted. SQLite ignores
// the clause and relies on its database-level write lock.
func ForUpdate(ctx context.Context) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if !InTransaction(ctx) || tx.Dialector.Name() == "sqlite" {
			return tx
		}
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
}
