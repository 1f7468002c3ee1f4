// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work brackets one business operation in a single
// database transaction and hands out repositories bound to that
// transaction.
//
// Each UnitOfWork instance is created fresh per operation and maintains its
// own transaction state, so concurrent operations stay isolated. The
// update/delete command handlers rely on this to run fetch + merge + write
// atomically, with the fetch holding a row lock.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	repo := uow.CleaningRepository()
//	// ... repository operations ...
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"cleanings/internal/adapters/out/postgres/cleaningrepo"
	"cleanings/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Every business operation gets a fresh unit of work.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances sharing the given database connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready to span one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction for a business
// operation, implementing ports.UnitOfWork with GORM's transaction
// support.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction. Subsequent repository
// operations execute within it. Calling Begin again on the same instance is
// a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. After
// commit the transaction is closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction when no transaction is active, which
// makes the deferred rollback after a successful commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CleaningRepository returns a cleaning repository bound to the current
// transaction when one is active, and to the main connection otherwise.
func (uow *GormUnitOfWork) CleaningRepository() ports.CleaningRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return cleaningrepo.NewGormCleaningRepository(db)
}
