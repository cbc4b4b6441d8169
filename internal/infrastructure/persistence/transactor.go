package persistence

import (
	"context"

	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"gorm.io/gorm"
)

type txKey struct{}

// dbFrom returns the transaction bound to ctx, or db scoped to ctx
func dbFrom(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}

type gormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor returns a Transactor whose transactions are picked up by every
// repository in this package through the context
func NewGormTransactor(db *gorm.DB) payments.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn in a transaction. Nested calls use savepoints
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return dbFrom(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
