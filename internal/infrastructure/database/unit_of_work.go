package database

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type txKey struct{}

// WithTx stores a transaction in context so nested units of work join it.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext extracts the transaction stored by WithTx.
func TxFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	return tx, ok && tx != nil
}

type hooksKey struct{}

type commitHooks struct {
	fns []func()
}

// WithCommitHooks returns a context that collects AfterCommit callbacks and
// a function that runs them in registration order.
func WithCommitHooks(ctx context.Context) (context.Context, func()) {
	hooks := &commitHooks{}
	return context.WithValue(ctx, hooksKey{}, hooks), func() {
		for _, fn := range hooks.fns {
			fn()
		}
	}
}

// AfterCommit defers fn until the unit of work carried by ctx commits. fn is
// dropped on rollback. Outside a unit of work fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey{}).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn()
}

// UnitOfWork is the transaction boundary for multi-step operations.
//
// Execute commits when fn returns nil and rolls back otherwise, returning fn's
// error exactly as it was produced. When ctx already carries a transaction,
// fn runs inside it and the outermost Execute owns commit and rollback.
type UnitOfWork interface {
	DB(ctx context.Context) *gorm.DB
	Execute(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error
}

type gormUnitOfWork struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewUnitOfWork(db *gorm.DB, log *logrus.Logger) UnitOfWork {
	return &gormUnitOfWork{db: db, log: log}
}

// DB returns the active transaction when ctx carries one, the root handle otherwise.
func (u *gormUnitOfWork) DB(ctx context.Context) *gorm.DB {
	if tx, ok := TxFromContext(ctx); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}

func (u *gormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error {
	if tx, ok := TxFromContext(ctx); ok {
		return fn(ctx, tx)
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return tx.Error
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	txCtx, runHooks := WithCommitHooks(WithTx(ctx, tx))
	if err := fn(txCtx, tx); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			u.log.Warnf("Failed to rollback transaction: %+v", rbErr)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	runHooks()
	return nil
}
