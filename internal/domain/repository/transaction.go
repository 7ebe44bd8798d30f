package repository

import "context"

// TransactionManager runs a unit of work atomically against the store.
// Reads made through the factory happen inside the unit, and every write commits
// together or not at all. Implementations that buffer writes require all reads to
// happen before the first write, so use cases read first and write last.
type TransactionManager interface {
	// Execute runs fn within a single atomic unit.
	// If fn returns an error nothing is committed and that error is returned unchanged.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ReadOnly runs fn against a consistent view without taking write locks.
	// Repositories obtained here must not be written to.
	ReadOnly(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error

	// MaxWritesPerCommit is the largest write-set a single unit can commit.
	MaxWritesPerCommit() int
}

// RepositoryFactory provides repositories bound to one atomic unit.
type RepositoryFactory interface {
	// NewShelfRepository returns a ShelfRepository bound to the current unit.
	NewShelfRepository() ShelfRepository

	// NewDeviceRepository returns a DeviceRepository bound to the current unit.
	NewDeviceRepository() DeviceRepository

	// NewUserRepository returns a UserRepository bound to the current unit.
	NewUserRepository() UserRepository
}
