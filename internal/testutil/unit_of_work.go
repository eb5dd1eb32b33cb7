package testutil

import (
	"context"

	"hospital-management/internal/infrastructure/database"

	"gorm.io/gorm"
)

type inTxKey struct{}

// UnitOfWork snapshots the store before running fn and restores it when fn
// fails, which gives tests the same all-or-nothing outcome as a database
// transaction. Nested calls join the outer one. The tx passed to fn is nil.
type UnitOfWork struct {
	Store *Store

	Commits   int
	Rollbacks int
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{Store: store}
}

func (u *UnitOfWork) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	if ctx.Value(inTxKey{}) != nil {
		return fn(ctx, nil)
	}

	snap := u.Store.snapshot()

	panicked := true
	defer func() {
		if panicked {
			u.Store.restore(snap)
			u.Rollbacks++
		}
	}()

	txCtx, runHooks := database.WithCommitHooks(context.WithValue(ctx, inTxKey{}, true))
	err := fn(txCtx, nil)
	panicked = false
	if err != nil {
		u.Store.restore(snap)
		u.Rollbacks++
		return err
	}

	u.Commits++
	runHooks()
	return nil
}
