package memory

import (
	"context"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
)

// autoFactory hands out repositories that commit every call on its own.
type autoFactory struct {
	store *Store
}

func (f *autoFactory) NewShelfRepository() repository.ShelfRepository {
	return &autoShelfRepository{store: f.store}
}

func (f *autoFactory) NewDeviceRepository() repository.DeviceRepository {
	return &autoDeviceRepository{store: f.store}
}

func (f *autoFactory) NewUserRepository() repository.UserRepository {
	return &autoUserRepository{store: f.store}
}

func run[T any](ctx context.Context, s *Store, fn func(repository.RepositoryFactory) (T, error)) (T, error) {
	var out T
	err := s.Execute(ctx, func(f repository.RepositoryFactory) error {
		var err error
		out, err = fn(f)

		return err
	})

	return out, err
}

func exec(ctx context.Context, s *Store, fn func(repository.RepositoryFactory) error) error {
	return s.Execute(ctx, fn)
}

type autoShelfRepository struct{ store *Store }

func (r *autoShelfRepository) FindShelfByID(ctx context.Context, id string) (*entity.Shelf, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) (*entity.Shelf, error) {
		return f.NewShelfRepository().FindShelfByID(ctx, id)
	})
}

func (r *autoShelfRepository) ListShelves(ctx context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) ([]*entity.Shelf, error) {
		return f.NewShelfRepository().ListShelves(ctx, filter)
	})
}

func (r *autoShelfRepository) CreateShelf(ctx context.Context, shelf *entity.Shelf) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewShelfRepository().CreateShelf(ctx, shelf)
	})
}

func (r *autoShelfRepository) UpdateShelf(ctx context.Context, shelf *entity.Shelf) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewShelfRepository().UpdateShelf(ctx, shelf)
	})
}

func (r *autoShelfRepository) DeleteShelf(ctx context.Context, id string) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewShelfRepository().DeleteShelf(ctx, id)
	})
}

type autoDeviceRepository struct{ store *Store }

func (r *autoDeviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) (*entity.Device, error) {
		return f.NewDeviceRepository().FindDeviceByID(ctx, id)
	})
}

func (r *autoDeviceRepository) FindDevicesByIDs(ctx context.Context, ids []string) (map[string]*entity.Device, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) (map[string]*entity.Device, error) {
		return f.NewDeviceRepository().FindDevicesByIDs(ctx, ids)
	})
}

func (r *autoDeviceRepository) FindDevicesByShelf(ctx context.Context, shelfID string) ([]*entity.Device, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) ([]*entity.Device, error) {
		return f.NewDeviceRepository().FindDevicesByShelf(ctx, shelfID)
	})
}

func (r *autoDeviceRepository) SearchDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) ([]*entity.Device, error) {
		return f.NewDeviceRepository().SearchDevices(ctx, filter)
	})
}

func (r *autoDeviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewDeviceRepository().CreateDevice(ctx, device)
	})
}

func (r *autoDeviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewDeviceRepository().UpdateDevice(ctx, device)
	})
}

func (r *autoDeviceRepository) DeleteDevice(ctx context.Context, id string) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewDeviceRepository().DeleteDevice(ctx, id)
	})
}

type autoUserRepository struct{ store *Store }

func (r *autoUserRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) (*entity.UserProfile, error) {
		return f.NewUserRepository().FindByID(ctx, id)
	})
}

func (r *autoUserRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Upsert(ctx, profile)
	})
}

func (r *autoUserRepository) FindUserIDsSearching(ctx context.Context, deviceIDs []string) (map[string][]string, error) {
	return run(ctx, r.store, func(f repository.RepositoryFactory) (map[string][]string, error) {
		return f.NewUserRepository().FindUserIDsSearching(ctx, deviceIDs)
	})
}

func (r *autoUserRepository) AddToSearchList(ctx context.Context, userID string, deviceIDs []string) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().AddToSearchList(ctx, userID, deviceIDs)
	})
}

func (r *autoUserRepository) RemoveFromSearchList(ctx context.Context, userID string, deviceIDs []string) error {
	return exec(ctx, r.store, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().RemoveFromSearchList(ctx, userID, deviceIDs)
	})
}
