// Package memory is an in-process store implementing the repository contracts.
// It backs local development and the workflow tests. A unit of work runs under a
// store-wide lock against a staged copy that replaces the live data on commit.
package memory

import (
	"context"
	"sync"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
)

var (
	errReadOnly      = errors.New("write attempted in a read-only unit")
	errTooManyWrites = errors.New("too many writes in a single commit")
	errNilUnitOfWork = errors.New("unit of work is nil")
)

// CommitHook is called with the staged write count before a unit commits.
// A non-nil error aborts the commit.
type CommitHook func(writes int) error

type snapshot struct {
	shelves map[string]*entity.Shelf
	devices map[string]*entity.Device
	users   map[string]*entity.UserProfile
}

func newSnapshot() *snapshot {
	return &snapshot{
		shelves: make(map[string]*entity.Shelf),
		devices: make(map[string]*entity.Device),
		users:   make(map[string]*entity.UserProfile),
	}
}

func (s *snapshot) clone() *snapshot {
	out := &snapshot{
		shelves: make(map[string]*entity.Shelf, len(s.shelves)),
		devices: make(map[string]*entity.Device, len(s.devices)),
		users:   make(map[string]*entity.UserProfile, len(s.users)),
	}
	for id, shelf := range s.shelves {
		out.shelves[id] = cloneShelf(shelf)
	}
	for id, device := range s.devices {
		out.devices[id] = cloneDevice(device)
	}
	for id, user := range s.users {
		out.users[id] = cloneProfile(user)
	}

	return out
}

// Store holds the data and serializes units of work.
type Store struct {
	mu         sync.Mutex
	data       *snapshot
	maxWrites  int
	commitHook CommitHook
}

// New creates an empty store that rejects commits larger than maxWrites.
func New(maxWrites int) *Store {
	return &Store{
		data:      newSnapshot(),
		maxWrites: maxWrites,
	}
}

// SetCommitHook installs a hook run before every commit. Pass nil to remove it.
func (s *Store) SetCommitHook(hook CommitHook) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.commitHook = hook
}

// MaxWritesPerCommit implements repository.TransactionManager.
func (s *Store) MaxWritesPerCommit() int {
	return s.maxWrites
}

// Execute implements repository.TransactionManager.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if fn == nil {
		return errNilUnitOfWork
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &unit{data: s.data.clone()}
	if err := fn(&factory{unit: u}); err != nil {
		return err
	}

	// Abandon the unit if the caller went away before commit.
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	if s.maxWrites > 0 && u.writes > s.maxWrites {
		return errors.Wrapf(errTooManyWrites, "%d writes exceed the limit of %d", u.writes, s.maxWrites)
	}
	if s.commitHook != nil {
		if err := s.commitHook(u.writes); err != nil {
			return err
		}
	}

	s.data = u.data

	return nil
}

// ReadOnly implements repository.TransactionManager.
func (s *Store) ReadOnly(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if fn == nil {
		return errNilUnitOfWork
	}
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(&factory{unit: &unit{data: s.data, readOnly: true}})
}

// Repositories returns repositories whose calls each run as their own unit.
// Used for seeding data in tests and local runs.
func (s *Store) Repositories() repository.RepositoryFactory {
	return &autoFactory{store: s}
}

type unit struct {
	data     *snapshot
	writes   int
	readOnly bool
}

func (u *unit) write() error {
	if u.readOnly {
		return errReadOnly
	}
	u.writes++

	return nil
}

type factory struct {
	unit *unit
}

func (f *factory) NewShelfRepository() repository.ShelfRepository {
	return &shelfRepository{unit: f.unit}
}

func (f *factory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{unit: f.unit}
}

func (f *factory) NewUserRepository() repository.UserRepository {
	return &userRepository{unit: f.unit}
}

// --- cloning ---

func cloneShelf(s *entity.Shelf) *entity.Shelf {
	if s == nil {
		return nil
	}
	out := *s

	return &out
}

func cloneDevice(d *entity.Device) *entity.Device {
	if d == nil {
		return nil
	}
	out := *d
	if d.RemovedDate != nil {
		removed := *d.RemovedDate
		out.RemovedDate = &removed
	}
	out.History = append([]entity.HistoryEntry(nil), d.History...)

	return &out
}

func cloneProfile(p *entity.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.SearchList = append([]string{}, p.SearchList...)

	return &out
}
