package memory

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedShelf(t *testing.T, store *Store, name string) *entity.Shelf {
	t.Helper()

	shelf := &entity.Shelf{Name: name, Capacity: 2, Type: entity.DeviceTypeONU}
	require.NoError(t, store.Repositories().NewShelfRepository().CreateShelf(context.Background(), shelf))
	require.NotEmpty(t, shelf.ID)

	return shelf
}

func TestStore_Execute_RollsBackOnError(t *testing.T) {
	store := New(10)
	shelf := seedShelf(t, store, "A")
	ctx := context.Background()

	errAbort := errors.New("abort")
	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		shelf.ItemCount = 1
		if err := f.NewShelfRepository().UpdateShelf(ctx, shelf); err != nil {
			return err
		}

		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	got, err := store.Repositories().NewShelfRepository().FindShelfByID(ctx, shelf.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.ItemCount)
}

func TestStore_Execute_WriteLimit(t *testing.T) {
	store := New(2)
	ctx := context.Background()

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		for _, id := range []string{"X1", "X2", "X3"} {
			if err := f.NewDeviceRepository().CreateDevice(ctx, &entity.Device{ID: id}); err != nil {
				return err
			}
		}

		return nil
	})
	require.ErrorIs(t, err, errTooManyWrites)

	found, err := store.Repositories().NewDeviceRepository().FindDevicesByIDs(ctx, []string{"X1", "X2", "X3"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestStore_Execute_CommitHook(t *testing.T) {
	store := New(10)
	ctx := context.Background()

	var seen int
	store.SetCommitHook(func(writes int) error {
		seen = writes

		return errors.New("rejected")
	})

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewDeviceRepository().CreateDevice(ctx, &entity.Device{ID: "X1"})
	})
	require.EqualError(t, err, "rejected")
	assert.Equal(t, 1, seen)

	store.SetCommitHook(nil)
	_, err = store.Repositories().NewDeviceRepository().FindDeviceByID(ctx, "X1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestStore_Execute_CancelledContext(t *testing.T) {
	store := New(10)
	ctx, cancel := context.WithCancel(context.Background())

	err := store.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewDeviceRepository().CreateDevice(ctx, &entity.Device{ID: "X1"}); err != nil {
			return err
		}
		cancel()

		return nil
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.Repositories().NewDeviceRepository().FindDeviceByID(context.Background(), "X1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestStore_ReadOnly_RejectsWrites(t *testing.T) {
	store := New(10)
	ctx := context.Background()

	err := store.ReadOnly(ctx, func(f repository.RepositoryFactory) error {
		return f.NewDeviceRepository().CreateDevice(ctx, &entity.Device{ID: "X1"})
	})

	require.ErrorIs(t, err, errReadOnly)
}

func TestStore_ReturnedEntitiesAreCopies(t *testing.T) {
	store := New(10)
	ctx := context.Background()
	devices := store.Repositories().NewDeviceRepository()

	device := &entity.Device{ID: "X1", History: []entity.HistoryEntry{{Action: entity.HistoryActionCreated}}}
	require.NoError(t, devices.CreateDevice(ctx, device))

	got, err := devices.FindDeviceByID(ctx, "X1")
	require.NoError(t, err)
	got.AppendHistory(entity.HistoryEntry{Action: entity.HistoryActionMoved})
	device.Status = entity.DeviceStatusRemoved

	again, err := devices.FindDeviceByID(ctx, "X1")
	require.NoError(t, err)
	assert.Len(t, again.History, 1)
	assert.Empty(t, again.Status)
}

func TestStore_DeviceRepository(t *testing.T) {
	store := New(10)
	ctx := context.Background()
	devices := store.Repositories().NewDeviceRepository()

	require.NoError(t, devices.CreateDevice(ctx, &entity.Device{ID: "X1", ShelfID: "a", Status: entity.DeviceStatusActive}))
	require.ErrorIs(t, devices.CreateDevice(ctx, &entity.Device{ID: "X1"}), repository.ErrDuplicateDevice)
	require.ErrorIs(t, devices.UpdateDevice(ctx, &entity.Device{ID: "nope"}), repository.ErrDeviceNotFound)
	require.ErrorIs(t, devices.DeleteDevice(ctx, "nope"), repository.ErrDeviceNotFound)

	onShelf, err := devices.FindDevicesByShelf(ctx, "a")
	require.NoError(t, err)
	require.Len(t, onShelf, 1)

	require.NoError(t, devices.DeleteDevice(ctx, "X1"))
	onShelf, err = devices.FindDevicesByShelf(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, onShelf)
}

func TestStore_UserRepository_SearchList(t *testing.T) {
	store := New(10)
	ctx := context.Background()
	users := store.Repositories().NewUserRepository()

	require.ErrorIs(t, users.RemoveFromSearchList(ctx, "u1", []string{"X1"}), repository.ErrUserNotFound)

	require.NoError(t, users.AddToSearchList(ctx, "u1", []string{"X1", "X2"}))
	require.NoError(t, users.AddToSearchList(ctx, "u1", []string{"X2", "X3"}))
	require.NoError(t, users.AddToSearchList(ctx, "u2", []string{"X3"}))

	profile := &entity.UserProfile{ID: "u1", Name: "Bob", Email: "bob@example.com"}
	require.NoError(t, users.Upsert(ctx, profile))
	assert.Equal(t, []string{"X1", "X2", "X3"}, profile.SearchList)
	assert.False(t, profile.CreatedAt.IsZero())

	searchers, err := users.FindUserIDsSearching(ctx, []string{"X3", "X1"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{"u1": {"X3", "X1"}, "u2": {"X3"}}, searchers)

	require.NoError(t, users.RemoveFromSearchList(ctx, "u1", []string{"X1", "X3"}))
	got, err := users.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"X2"}, got.SearchList)
	assert.Equal(t, "Bob", got.Name)
}

func TestStore_ShelfRepository_ListShelves(t *testing.T) {
	store := New(10)
	ctx := context.Background()
	shelves := store.Repositories().NewShelfRepository()

	full := &entity.Shelf{Name: "B", Capacity: 1, ItemCount: 1, Type: entity.DeviceTypeONU}
	open := &entity.Shelf{Name: "A", Capacity: 1, Type: entity.DeviceTypeONU}
	stb := &entity.Shelf{Name: "C", Capacity: 1, Type: entity.DeviceTypeSTB}
	for _, shelf := range []*entity.Shelf{full, open, stb} {
		require.NoError(t, shelves.CreateShelf(ctx, shelf))
	}

	all, err := shelves.ListShelves(ctx, repository.ShelfFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "A", all[0].Name)

	withSpace, err := shelves.ListShelves(ctx, repository.ShelfFilter{Type: entity.DeviceTypeONU, WithSpaceOnly: true})
	require.NoError(t, err)
	require.Len(t, withSpace, 1)
	assert.Equal(t, open.ID, withSpace[0].ID)

	require.NoError(t, shelves.DeleteShelf(ctx, stb.ID))
	require.ErrorIs(t, shelves.DeleteShelf(ctx, stb.ID), repository.ErrShelfNotFound)
}
