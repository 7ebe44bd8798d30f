package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

type inventoryService struct {
	eventSink

	txManager repository.TransactionManager
	now       func() time.Time
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Recorder  service.OperationRecorder
	Logger    *slog.Logger
}

// NewInventoryService creates the inventory consistency workflow.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		eventSink: eventSink{
			publisher: params.Publisher,
			recorder:  params.Recorder,
			logger:    params.Logger,
		},
		txManager: params.TxManager,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AddDevices places a batch of new devices on a shelf.
func (s *inventoryService) AddDevices(ctx context.Context, actor *entity.Caller, input usecase.AddDevicesInput) (_ *usecase.AddDevicesOutput, err error) {
	defer s.observe(opAddDevices, time.Now(), &err)

	if err := requireActor(actor); err != nil {
		return nil, err
	}

	ids := ParseDeviceIDs(input.RawIDs)
	if len(ids) == 0 {
		return nil, domainerrors.NewValidation("at least one device id is required")
	}
	if err := validateDeviceIDs(ids); err != nil {
		return nil, err
	}
	if input.ShelfID == "" {
		return nil, domainerrors.NewValidation("shelf id is required")
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.NewValidation(fmt.Sprintf("invalid device type: %q", input.Type))
	}

	writes := len(ids) + 1
	if limit := s.txManager.MaxWritesPerCommit(); writes > limit {
		return nil, batchLimitExceeded(writes, limit)
	}

	now := s.now()
	output := &usecase.AddDevicesOutput{}

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		shelfRepo := txRepo.NewShelfRepository()
		deviceRepo := txRepo.NewDeviceRepository()

		shelf, err := shelfRepo.FindShelfByID(ctx, input.ShelfID)
		if err != nil {
			return err
		}
		if shelf.Type != input.Type {
			return domainerrors.ErrTypeMismatch.WithMessagef(
				"shelf %s holds %s devices, not %s", shelf.Name, shelf.Type, input.Type)
		}
		if shelf.ItemCount+len(ids) > shelf.Capacity {
			return domainerrors.NewCapacityExceeded(shelf.Name, len(ids), shelf.Available())
		}

		existing, err := deviceRepo.FindDevicesByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			duplicates := make([]string, 0, len(existing))
			for _, id := range ids {
				if _, ok := existing[id]; ok {
					duplicates = append(duplicates, id)
				}
			}

			return domainerrors.NewDuplicateID(duplicates)
		}

		devices := make([]*entity.Device, 0, len(ids))
		for _, id := range ids {
			device := &entity.Device{
				ID:        id,
				ShelfID:   shelf.ID,
				ShelfName: shelf.Name,
				Type:      input.Type,
				Status:    entity.DeviceStatusActive,
				AddedDate: now,
			}
			entry := historyEntry(entity.HistoryActionCreated, actor, now)
			entry.ShelfName = shelf.Name
			entry.Description = "added to shelf " + shelf.Name
			device.AppendHistory(entry)

			if err := deviceRepo.CreateDevice(ctx, device); err != nil {
				return err
			}
			devices = append(devices, device)
		}

		shelf.ItemCount += len(devices)
		if err := shelfRepo.UpdateShelf(ctx, shelf); err != nil {
			return err
		}

		output.Shelf = shelf
		output.Devices = devices

		return nil
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.log(ctx).Info("devices added",
		slog.String("shelf_id", output.Shelf.ID),
		slog.Int("count", len(output.Devices)),
		slog.String("actor", actor.UID),
	)
	s.affected(opAddDevices, len(output.Devices))
	s.publish(ctx, &service.InventoryEvent{
		Type:       service.EventDevicesAdded,
		ShelfIDs:   []string{output.Shelf.ID},
		DeviceIDs:  ids,
		ActorID:    actor.UID,
		OccurredAt: now,
	})

	return output, nil
}

// MoveDevice reassigns a device to another shelf of the same type.
func (s *inventoryService) MoveDevice(ctx context.Context, actor *entity.Caller, deviceID, targetShelfID string) (_ *entity.Device, err error) {
	defer s.observe(opMoveDevice, time.Now(), &err)

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if deviceID == "" || targetShelfID == "" {
		return nil, domainerrors.NewValidation("device id and target shelf id are required")
	}

	now := s.now()
	var (
		moved    *entity.Device
		originID string
	)

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		shelfRepo := txRepo.NewShelfRepository()
		deviceRepo := txRepo.NewDeviceRepository()

		device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
		if err != nil {
			return err
		}
		target, err := shelfRepo.FindShelfByID(ctx, targetShelfID)
		if err != nil {
			return err
		}
		if device.ShelfID == target.ID {
			return domainerrors.NewValidation("device is already on shelf " + target.Name)
		}
		if !target.HasSpace() {
			return domainerrors.NewCapacityExceeded(target.Name, 1, target.Available())
		}
		if device.Type != target.Type {
			return domainerrors.ErrTypeMismatch.WithMessagef(
				"shelf %s holds %s devices, not %s", target.Name, target.Type, device.Type)
		}

		origin, err := shelfRepo.FindShelfByID(ctx, device.ShelfID)
		if err != nil {
			if errors.Is(err, repository.ErrShelfNotFound) {
				return domainerrors.ErrInternalConsistency.WithMessagef(
					"device %s references missing shelf %s", device.ID, device.ShelfID)
			}

			return err
		}
		if origin.ItemCount <= 0 {
			return domainerrors.ErrInternalConsistency.WithMessagef(
				"shelf %s has no devices to move", origin.Name)
		}

		entry := historyEntry(entity.HistoryActionMoved, actor, now)
		entry.FromShelfName = origin.Name
		entry.ShelfName = target.Name
		entry.Description = fmt.Sprintf("moved from %s to %s", origin.Name, target.Name)
		device.AppendHistory(entry)
		device.ShelfID = target.ID
		device.ShelfName = target.Name

		origin.ItemCount--
		target.ItemCount++

		if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
			return err
		}
		if err := shelfRepo.UpdateShelf(ctx, origin); err != nil {
			return err
		}
		if err := shelfRepo.UpdateShelf(ctx, target); err != nil {
			return err
		}

		moved = device
		originID = origin.ID

		return nil
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.affected(opMoveDevice, 1)
	s.publish(ctx, &service.InventoryEvent{
		Type:       service.EventDeviceMoved,
		ShelfIDs:   []string{originID, moved.ShelfID},
		DeviceIDs:  []string{moved.ID},
		ActorID:    actor.UID,
		OccurredAt: now,
	})

	return moved, nil
}

// RetireDevice retires a single device.
func (s *inventoryService) RetireDevice(ctx context.Context, actor *entity.Caller, deviceID string) (*entity.Device, error) {
	if deviceID == "" {
		return nil, domainerrors.NewValidation("device id is required")
	}

	retired, err := s.RetireAll(ctx, actor, []string{deviceID})
	if err != nil {
		return nil, err
	}

	return retired[0], nil
}

// RetireAll marks devices removed and strips them from every search list in one unit.
// Shelf counters are left alone because a retired device keeps its shelf.
func (s *inventoryService) RetireAll(ctx context.Context, actor *entity.Caller, deviceIDs []string) (_ []*entity.Device, err error) {
	defer s.observe(opRetireDevices, time.Now(), &err)

	if err := requireActor(actor); err != nil {
		return nil, err
	}

	ids := uniqueIDs(deviceIDs)
	if len(ids) == 0 {
		return nil, domainerrors.NewValidation("at least one device id is required")
	}

	limit := s.txManager.MaxWritesPerCommit()
	if len(ids) > limit {
		return nil, batchLimitExceeded(len(ids), limit)
	}

	now := s.now()
	var retired []*entity.Device

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		deviceRepo := txRepo.NewDeviceRepository()
		userRepo := txRepo.NewUserRepository()

		found, err := deviceRepo.FindDevicesByIDs(ctx, ids)
		if err != nil {
			return err
		}

		var missing, removed []string
		for _, id := range ids {
			device, ok := found[id]
			switch {
			case !ok:
				missing = append(missing, id)
			case !device.IsActive():
				removed = append(removed, id)
			}
		}
		if len(missing) > 0 {
			return domainerrors.ErrDeviceNotFound.
				WithMessagef("device(s) not found: %s", strings.Join(missing, ", ")).
				WithDetails(domainerrors.IDsDetails{IDs: missing})
		}
		if len(removed) > 0 {
			return domainerrors.ErrAlreadyRemoved.
				WithMessagef("device(s) already removed: %s", strings.Join(removed, ", ")).
				WithDetails(domainerrors.IDsDetails{IDs: removed})
		}

		searchers, err := userRepo.FindUserIDsSearching(ctx, ids)
		if err != nil {
			return err
		}
		if writes := len(ids) + len(searchers); writes > limit {
			return batchLimitExceeded(writes, limit)
		}

		retired = make([]*entity.Device, 0, len(ids))
		for _, id := range ids {
			device := found[id]
			removedAt := now
			device.Status = entity.DeviceStatusRemoved
			device.RemovedDate = &removedAt

			entry := historyEntry(entity.HistoryActionRemoved, actor, now)
			entry.ShelfName = device.ShelfName
			entry.Description = "retired from shelf " + device.ShelfName
			device.AppendHistory(entry)

			if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
				return err
			}
			retired = append(retired, device)
		}

		return stripSearchLists(ctx, userRepo, searchers)
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.affected(opRetireDevices, len(retired))
	s.publish(ctx, &service.InventoryEvent{
		Type:       service.EventDevicesRetired,
		ShelfIDs:   shelfIDsOf(retired),
		DeviceIDs:  ids,
		ActorID:    actor.UID,
		OccurredAt: now,
	})

	return retired, nil
}

// RestoreDevice returns a retired device to active duty on its shelf.
func (s *inventoryService) RestoreDevice(ctx context.Context, actor *entity.Caller, deviceID string) (_ *entity.Device, err error) {
	defer s.observe(opRestoreDevice, time.Now(), &err)

	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if deviceID == "" {
		return nil, domainerrors.NewValidation("device id is required")
	}

	now := s.now()
	var restored *entity.Device

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		deviceRepo := txRepo.NewDeviceRepository()

		device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
		if err != nil {
			return err
		}
		if device.IsActive() {
			return domainerrors.ErrNotRemoved.WithMessagef("device %s is active", device.ID)
		}

		device.Status = entity.DeviceStatusActive
		device.RemovedDate = nil

		entry := historyEntry(entity.HistoryActionRestored, actor, now)
		entry.ShelfName = device.ShelfName
		entry.Description = "restored to shelf " + device.ShelfName
		device.AppendHistory(entry)

		if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
			return err
		}
		restored = device

		return nil
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.affected(opRestoreDevice, 1)
	s.publish(ctx, &service.InventoryEvent{
		Type:       service.EventDeviceRestored,
		ShelfIDs:   []string{restored.ShelfID},
		DeviceIDs:  []string{restored.ID},
		ActorID:    actor.UID,
		OccurredAt: now,
	})

	return restored, nil
}

// DeleteDevice removes a device permanently and releases its shelf slot.
func (s *inventoryService) DeleteDevice(ctx context.Context, actor *entity.Caller, deviceID string) (err error) {
	defer s.observe(opDeleteDevice, time.Now(), &err)

	if err := requireAdmin(actor); err != nil {
		return err
	}
	if deviceID == "" {
		return domainerrors.NewValidation("device id is required")
	}

	var shelfID string

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		shelfRepo := txRepo.NewShelfRepository()
		deviceRepo := txRepo.NewDeviceRepository()
		userRepo := txRepo.NewUserRepository()

		device, err := deviceRepo.FindDeviceByID(ctx, deviceID)
		if err != nil {
			return err
		}

		shelf, err := shelfRepo.FindShelfByID(ctx, device.ShelfID)
		if err != nil {
			if errors.Is(err, repository.ErrShelfNotFound) {
				return domainerrors.ErrInternalConsistency.WithMessagef(
					"device %s references missing shelf %s", device.ID, device.ShelfID)
			}

			return err
		}
		if shelf.ItemCount <= 0 {
			return domainerrors.ErrInternalConsistency.WithMessagef(
				"shelf %s item count is already zero", shelf.Name)
		}

		searchers, err := userRepo.FindUserIDsSearching(ctx, []string{device.ID})
		if err != nil {
			return err
		}
		if writes, limit := 2+len(searchers), s.txManager.MaxWritesPerCommit(); writes > limit {
			return batchLimitExceeded(writes, limit)
		}

		if err := deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			return err
		}
		shelf.ItemCount--
		if err := shelfRepo.UpdateShelf(ctx, shelf); err != nil {
			return err
		}
		shelfID = shelf.ID

		return stripSearchLists(ctx, userRepo, searchers)
	})
	if err != nil {
		return writeFailure(err)
	}

	s.affected(opDeleteDevice, 1)
	s.publish(ctx, &service.InventoryEvent{
		Type:      service.EventDeviceDeleted,
		ShelfIDs:  []string{shelfID},
		DeviceIDs: []string{deviceID},
		ActorID:   actor.UID,
	})

	return nil
}

// CreateShelf adds an empty shelf.
func (s *inventoryService) CreateShelf(ctx context.Context, actor *entity.Caller, input usecase.ShelfInput) (_ *entity.Shelf, err error) {
	defer s.observe(opCreateShelf, time.Now(), &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	input, err = normalizeShelfInput(input)
	if err != nil {
		return nil, err
	}

	shelf := &entity.Shelf{
		Name:     input.Name,
		Capacity: input.Capacity,
		Type:     input.Type,
	}

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.NewShelfRepository().CreateShelf(ctx, shelf)
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.publish(ctx, &service.InventoryEvent{
		Type:     service.EventShelfCreated,
		ShelfIDs: []string{shelf.ID},
		ActorID:  actor.UID,
	})

	return shelf, nil
}

// UpdateShelf edits a shelf. The type may only change while the shelf is empty.
// Lowering the capacity below the current count is allowed and reported.
func (s *inventoryService) UpdateShelf(ctx context.Context, actor *entity.Caller, shelfID string, input usecase.ShelfInput) (_ *usecase.UpdateShelfOutput, err error) {
	defer s.observe(opUpdateShelf, time.Now(), &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if shelfID == "" {
		return nil, domainerrors.NewValidation("shelf id is required")
	}

	input, err = normalizeShelfInput(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Shelf

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		shelfRepo := txRepo.NewShelfRepository()

		shelf, err := shelfRepo.FindShelfByID(ctx, shelfID)
		if err != nil {
			return err
		}
		if shelf.Type != input.Type && shelf.ItemCount > 0 {
			return domainerrors.ErrTypeChangeNotAllowed.WithMessagef(
				"shelf %s still holds %d device(s)", shelf.Name, shelf.ItemCount)
		}

		shelf.Name = input.Name
		shelf.Capacity = input.Capacity
		shelf.Type = input.Type

		if err := shelfRepo.UpdateShelf(ctx, shelf); err != nil {
			return err
		}
		updated = shelf

		return nil
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	if updated.OverCapacity() {
		s.log(ctx).Warn("shelf capacity below item count",
			slog.String("shelf_id", updated.ID),
			slog.Int("capacity", updated.Capacity),
			slog.Int("item_count", updated.ItemCount),
		)
	}
	s.publish(ctx, &service.InventoryEvent{
		Type:     service.EventShelfUpdated,
		ShelfIDs: []string{updated.ID},
		ActorID:  actor.UID,
	})

	return &usecase.UpdateShelfOutput{Shelf: updated, OverCapacity: updated.OverCapacity()}, nil
}

// DeleteShelf deletes a shelf together with every device assigned to it.
func (s *inventoryService) DeleteShelf(ctx context.Context, actor *entity.Caller, shelfID string) (_ *usecase.DeleteShelfOutput, err error) {
	defer s.observe(opDeleteShelf, time.Now(), &err)

	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if shelfID == "" {
		return nil, domainerrors.NewValidation("shelf id is required")
	}

	var deviceIDs []string

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		shelfRepo := txRepo.NewShelfRepository()
		deviceRepo := txRepo.NewDeviceRepository()

		shelf, err := shelfRepo.FindShelfByID(ctx, shelfID)
		if err != nil {
			return err
		}
		devices, err := deviceRepo.FindDevicesByShelf(ctx, shelf.ID)
		if err != nil {
			return err
		}
		if writes, limit := len(devices)+1, s.txManager.MaxWritesPerCommit(); writes > limit {
			return batchLimitExceeded(writes, limit)
		}

		deviceIDs = make([]string, 0, len(devices))
		for _, device := range devices {
			if err := deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
				return err
			}
			deviceIDs = append(deviceIDs, device.ID)
		}

		return shelfRepo.DeleteShelf(ctx, shelf.ID)
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.affected(opDeleteShelf, len(deviceIDs))
	s.publish(ctx, &service.InventoryEvent{
		Type:      service.EventShelfDeleted,
		ShelfIDs:  []string{shelfID},
		DeviceIDs: deviceIDs,
		ActorID:   actor.UID,
	})

	return &usecase.DeleteShelfOutput{ShelfID: shelfID, DeletedDevices: len(deviceIDs)}, nil
}

func normalizeShelfInput(input usecase.ShelfInput) (usecase.ShelfInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = entity.DeviceType(strings.ToLower(strings.TrimSpace(string(input.Type))))

	switch {
	case input.Name == "":
		return input, domainerrors.NewValidation("shelf name is required")
	case input.Capacity <= 0:
		return input, domainerrors.NewValidation("shelf capacity must be greater than zero")
	case !input.Type.IsValid():
		return input, domainerrors.NewValidation(fmt.Sprintf("invalid device type: %q", input.Type))
	}

	return input, nil
}

// stripSearchLists removes the matched device ids from each user's search list.
func stripSearchLists(ctx context.Context, userRepo repository.UserRepository, searchers map[string][]string) error {
	userIDs := make([]string, 0, len(searchers))
	for userID := range searchers {
		userIDs = append(userIDs, userID)
	}
	slices.Sort(userIDs)

	for _, userID := range userIDs {
		if err := userRepo.RemoveFromSearchList(ctx, userID, searchers[userID]); err != nil {
			return err
		}
	}

	return nil
}

func shelfIDsOf(devices []*entity.Device) []string {
	ids := make([]string, 0, len(devices))
	for _, device := range devices {
		if !slices.Contains(ids, device.ShelfID) {
			ids = append(ids, device.ShelfID)
		}
	}

	return ids
}
