// Package firestore implements the repository contracts on Cloud Firestore.
// Every unit of work is a Firestore transaction: reads go through the
// transaction and must precede its writes, which commit atomically.
package firestore

import (
	"context"
	"log/slog"

	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type transactionManager struct {
	client    *fs.Client
	maxWrites int
	logger    *slog.Logger
}

// repositoryFactory binds repositories to one transaction.
type repositoryFactory struct {
	client *fs.Client
	tx     *fs.Transaction
}

func (f *repositoryFactory) NewShelfRepository() repository.ShelfRepository {
	return &shelfRepository{client: f.client, tx: f.tx}
}

func (f *repositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{client: f.client, tx: f.tx}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{client: f.client, tx: f.tx}
}

// NewTransactionManager creates the Firestore-backed TransactionManager.
func NewTransactionManager(client *fs.Client, maxWrites int, logger *slog.Logger) repository.TransactionManager {
	return &transactionManager{
		client:    client,
		maxWrites: maxWrites,
		logger:    logger,
	}
}

func (tm *transactionManager) MaxWritesPerCommit() int {
	return tm.maxWrites
}

// Execute runs fn in a read-write transaction. Firestore retries fn on contention,
// so fn must not keep state between attempts.
func (tm *transactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	attempts := 0

	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		attempts++
		fnErr = fn(&repositoryFactory{client: tm.client, tx: tx})

		return fnErr
	})

	if attempts > 1 {
		tm.logger.DebugContext(ctx, "firestore transaction retried", slog.Int("attempts", attempts))
	}

	return translateError(err, fnErr)
}

// ReadOnly runs fn in a read-only transaction, which takes no locks.
func (tm *transactionManager) ReadOnly(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *fs.Transaction) error {
		fnErr = fn(&repositoryFactory{client: tm.client, tx: tx})

		return fnErr
	}, fs.ReadOnly)

	return translateError(err, fnErr)
}

// translateError returns the callback's own error unchanged and wraps commit failures.
func translateError(err, fnErr error) error {
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	if status.Code(err) == codes.AlreadyExists {
		return errors.Wrap(repository.ErrDuplicateDevice, err.Error())
	}

	return errors.Wrap(err, "firestore commit")
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
