package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"

	"github.com/google/uuid"
)

// --- shelves ---

type shelfRepository struct {
	unit *unit
}

func (r *shelfRepository) FindShelfByID(_ context.Context, id string) (*entity.Shelf, error) {
	shelf, ok := r.unit.data.shelves[id]
	if !ok {
		return nil, repository.ErrShelfNotFound
	}

	return cloneShelf(shelf), nil
}

func (r *shelfRepository) ListShelves(_ context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error) {
	shelves := make([]*entity.Shelf, 0, len(r.unit.data.shelves))
	for _, shelf := range r.unit.data.shelves {
		if filter.Type != "" && shelf.Type != filter.Type {
			continue
		}
		if filter.WithSpaceOnly && !shelf.HasSpace() {
			continue
		}
		shelves = append(shelves, cloneShelf(shelf))
	}

	sort.Slice(shelves, func(i, j int) bool {
		if shelves[i].Name != shelves[j].Name {
			return shelves[i].Name < shelves[j].Name
		}

		return shelves[i].ID < shelves[j].ID
	})

	return shelves, nil
}

func (r *shelfRepository) CreateShelf(_ context.Context, shelf *entity.Shelf) error {
	if err := r.unit.write(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if shelf.ID == "" {
		shelf.ID = uuid.NewString()
	}
	shelf.CreatedAt = now
	shelf.UpdatedAt = now
	r.unit.data.shelves[shelf.ID] = cloneShelf(shelf)

	return nil
}

func (r *shelfRepository) UpdateShelf(_ context.Context, shelf *entity.Shelf) error {
	existing, ok := r.unit.data.shelves[shelf.ID]
	if !ok {
		return repository.ErrShelfNotFound
	}
	if err := r.unit.write(); err != nil {
		return err
	}

	shelf.CreatedAt = existing.CreatedAt
	shelf.UpdatedAt = time.Now().UTC()
	r.unit.data.shelves[shelf.ID] = cloneShelf(shelf)

	return nil
}

func (r *shelfRepository) DeleteShelf(_ context.Context, id string) error {
	if _, ok := r.unit.data.shelves[id]; !ok {
		return repository.ErrShelfNotFound
	}
	if err := r.unit.write(); err != nil {
		return err
	}
	delete(r.unit.data.shelves, id)

	return nil
}

// --- devices ---

type deviceRepository struct {
	unit *unit
}

func (r *deviceRepository) FindDeviceByID(_ context.Context, id string) (*entity.Device, error) {
	device, ok := r.unit.data.devices[id]
	if !ok {
		return nil, repository.ErrDeviceNotFound
	}

	return cloneDevice(device), nil
}

func (r *deviceRepository) FindDevicesByIDs(_ context.Context, ids []string) (map[string]*entity.Device, error) {
	found := make(map[string]*entity.Device, len(ids))
	for _, id := range ids {
		if device, ok := r.unit.data.devices[id]; ok {
			found[id] = cloneDevice(device)
		}
	}

	return found, nil
}

func (r *deviceRepository) FindDevicesByShelf(ctx context.Context, shelfID string) ([]*entity.Device, error) {
	return r.SearchDevices(ctx, repository.DeviceFilter{ShelfID: shelfID})
}

func (r *deviceRepository) SearchDevices(_ context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	devices := make([]*entity.Device, 0)
	for id, device := range r.unit.data.devices {
		if filter.IDPrefix != "" && !strings.HasPrefix(id, filter.IDPrefix) {
			continue
		}
		if filter.ShelfID != "" && device.ShelfID != filter.ShelfID {
			continue
		}
		if filter.Status != "" && device.Status != filter.Status {
			continue
		}
		if filter.Type != "" && device.Type != filter.Type {
			continue
		}
		devices = append(devices, cloneDevice(device))
	}

	sort.Slice(devices, func(i, j int) bool { return devices[i].ID < devices[j].ID })

	if filter.Limit > 0 && len(devices) > filter.Limit {
		devices = devices[:filter.Limit]
	}

	return devices, nil
}

func (r *deviceRepository) CreateDevice(_ context.Context, device *entity.Device) error {
	if _, ok := r.unit.data.devices[device.ID]; ok {
		return repository.ErrDuplicateDevice
	}
	if err := r.unit.write(); err != nil {
		return err
	}
	r.unit.data.devices[device.ID] = cloneDevice(device)

	return nil
}

func (r *deviceRepository) UpdateDevice(_ context.Context, device *entity.Device) error {
	if _, ok := r.unit.data.devices[device.ID]; !ok {
		return repository.ErrDeviceNotFound
	}
	if err := r.unit.write(); err != nil {
		return err
	}
	r.unit.data.devices[device.ID] = cloneDevice(device)

	return nil
}

func (r *deviceRepository) DeleteDevice(_ context.Context, id string) error {
	if _, ok := r.unit.data.devices[id]; !ok {
		return repository.ErrDeviceNotFound
	}
	if err := r.unit.write(); err != nil {
		return err
	}
	delete(r.unit.data.devices, id)

	return nil
}

// --- users ---

type userRepository struct {
	unit *unit
}

func (r *userRepository) FindByID(_ context.Context, id string) (*entity.UserProfile, error) {
	user, ok := r.unit.data.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneProfile(user), nil
}

func (r *userRepository) Upsert(_ context.Context, profile *entity.UserProfile) error {
	if err := r.unit.write(); err != nil {
		return err
	}

	now := time.Now().UTC()
	existing, ok := r.unit.data.users[profile.ID]
	if !ok {
		existing = &entity.UserProfile{ID: profile.ID, SearchList: []string{}, CreatedAt: now}
		r.unit.data.users[profile.ID] = existing
	}
	existing.Name = profile.Name
	existing.Email = profile.Email
	existing.UpdatedAt = now

	profile.SearchList = append([]string{}, existing.SearchList...)
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = now

	return nil
}

func (r *userRepository) FindUserIDsSearching(_ context.Context, deviceIDs []string) (map[string][]string, error) {
	matches := make(map[string][]string)
	for userID, user := range r.unit.data.users {
		for _, id := range deviceIDs {
			if slices.Contains(user.SearchList, id) {
				matches[userID] = append(matches[userID], id)
			}
		}
	}

	return matches, nil
}

func (r *userRepository) AddToSearchList(_ context.Context, userID string, deviceIDs []string) error {
	if err := r.unit.write(); err != nil {
		return err
	}

	user, ok := r.unit.data.users[userID]
	if !ok {
		now := time.Now().UTC()
		user = &entity.UserProfile{ID: userID, SearchList: []string{}, CreatedAt: now, UpdatedAt: now}
		r.unit.data.users[userID] = user
	}
	for _, id := range deviceIDs {
		if !slices.Contains(user.SearchList, id) {
			user.SearchList = append(user.SearchList, id)
		}
	}

	return nil
}

func (r *userRepository) RemoveFromSearchList(_ context.Context, userID string, deviceIDs []string) error {
	user, ok := r.unit.data.users[userID]
	if !ok {
		return repository.ErrUserNotFound
	}
	if err := r.unit.write(); err != nil {
		return err
	}
	user.SearchList = slices.DeleteFunc(user.SearchList, func(id string) bool {
		return slices.Contains(deviceIDs, id)
	})

	return nil
}
