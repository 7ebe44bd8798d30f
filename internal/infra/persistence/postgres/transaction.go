// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db        *gorm.DB
	maxWrites int
}

// gormRepositoryFactory holds a specific GORM transaction and creates repositories bound to it.
// When forUpdate is set, point reads lock the rows they return until the transaction ends.
type gormRepositoryFactory struct {
	tx        *gorm.DB // In GORM, a transaction object is also a *gorm.DB
	forUpdate bool
}

func (f *gormRepositoryFactory) NewShelfRepository() repository.ShelfRepository {
	return &shelfRepository{db: f.tx, forUpdate: f.forUpdate}
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{db: f.tx, forUpdate: f.forUpdate}
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{db: f.tx, forUpdate: f.forUpdate}
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, maxWrites int) repository.TransactionManager {
	return &gormTransactionManager{db: db, maxWrites: maxWrites}
}

func (tm *gormTransactionManager) MaxWritesPerCommit() int {
	return tm.maxWrites
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, nil, &gormRepositoryFactory{forUpdate: true}, fn)
}

// ReadOnly runs fn in a read-only repeatable-read transaction without row locks.
func (tm *gormTransactionManager) ReadOnly(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

	return tm.run(ctx, opts, &gormRepositoryFactory{}, fn)
}

func (tm *gormTransactionManager) run(
	ctx context.Context,
	opts *sql.TxOptions,
	factory *gormRepositoryFactory,
	fn func(repoFactory repository.RepositoryFactory) error,
) error {
	tx := tm.db.WithContext(ctx).Begin(opts)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Fx or the recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory.tx = tx

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// lockingRead returns db with a FOR UPDATE clause when the unit writes.
func lockingRead(ctx context.Context, db *gorm.DB, forUpdate bool) *gorm.DB {
	db = db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	return db
}
