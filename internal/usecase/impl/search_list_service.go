package impl

import (
	"context"
	"log/slog"
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

type searchListService struct {
	eventSink

	txManager repository.TransactionManager
	inventory usecase.InventoryUsecase
	now       func() time.Time
}

// SearchListServiceParams holds dependencies for SearchListService, injected by Fx.
type SearchListServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Inventory usecase.InventoryUsecase
	Recorder  service.OperationRecorder
	Logger    *slog.Logger
}

// NewSearchListService creates the per-user search list use case.
func NewSearchListService(params SearchListServiceParams) usecase.SearchListUsecase {
	return &searchListService{
		eventSink: eventSink{
			recorder: params.Recorder,
			logger:   params.Logger,
		},
		txManager: params.TxManager,
		inventory: params.Inventory,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetSearchList skips ids whose devices were deleted since they were flagged.
func (s *searchListService) GetSearchList(ctx context.Context, caller *entity.Caller) ([]*entity.Device, error) {
	if err := requireActor(caller); err != nil {
		return nil, err
	}

	var devices []*entity.Device
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		devices, err = loadSearchList(ctx, repo, caller.UID)

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return devices, nil
}

// AddToSearchList flags existing active devices for the caller.
func (s *searchListService) AddToSearchList(ctx context.Context, caller *entity.Caller, rawIDs string) (_ []*entity.Device, err error) {
	defer s.observe(opFlagDevices, time.Now(), &err)

	if err := requireActor(caller); err != nil {
		return nil, err
	}

	ids := ParseDeviceIDs(rawIDs)
	if len(ids) == 0 {
		return nil, domainerrors.NewValidation("at least one device id is required")
	}
	if err := validateDeviceIDs(ids); err != nil {
		return nil, err
	}
	if writes, limit := len(ids)+1, s.txManager.MaxWritesPerCommit(); writes > limit {
		return nil, batchLimitExceeded(writes, limit)
	}

	now := s.now()
	var flagged []*entity.Device

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

		profile, err := userRepo.FindByID(ctx, caller.UID)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}

		flagged = make([]*entity.Device, 0, len(ids))
		for _, id := range ids {
			device := found[id]
			if profile != nil && profile.HasSearched(id) {
				flagged = append(flagged, device)

				continue
			}

			entry := historyEntry(entity.HistoryActionAdded, caller, now)
			entry.Source = entity.HistorySourceSearch
			entry.ShelfName = device.ShelfName
			entry.Description = "flagged on search list"
			device.AppendHistory(entry)

			if err := deviceRepo.UpdateDevice(ctx, device); err != nil {
				return err
			}
			flagged = append(flagged, device)
		}

		return userRepo.AddToSearchList(ctx, caller.UID, ids)
	})
	if err != nil {
		return nil, writeFailure(err)
	}

	s.affected(opFlagDevices, len(flagged))

	return flagged, nil
}

func (s *searchListService) RemoveFromSearchList(ctx context.Context, caller *entity.Caller, deviceIDs []string) (err error) {
	defer s.observe(opUnflagDevices, time.Now(), &err)

	if err := requireActor(caller); err != nil {
		return err
	}

	ids := uniqueIDs(deviceIDs)
	if len(ids) == 0 {
		return domainerrors.NewValidation("at least one device id is required")
	}

	err = s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		err := txRepo.NewUserRepository().RemoveFromSearchList(ctx, caller.UID, ids)
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return writeFailure(err)
	}

	return nil
}

// RetireSearchList retires the active devices on the caller's list in one unit.
func (s *searchListService) RetireSearchList(ctx context.Context, caller *entity.Caller) ([]*entity.Device, error) {
	devices, err := s.GetSearchList(ctx, caller)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.IsActive() {
			ids = append(ids, device.ID)
		}
	}
	if len(ids) == 0 {
		return []*entity.Device{}, nil
	}

	return s.inventory.RetireAll(ctx, caller, ids)
}

func loadSearchList(ctx context.Context, repo repository.RepositoryFactory, userID string) ([]*entity.Device, error) {
	profile, err := repo.NewUserRepository().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []*entity.Device{}, nil
		}

		return nil, err
	}
	if len(profile.SearchList) == 0 {
		return []*entity.Device{}, nil
	}

	found, err := repo.NewDeviceRepository().FindDevicesByIDs(ctx, profile.SearchList)
	if err != nil {
		return nil, err
	}

	devices := make([]*entity.Device, 0, len(found))
	for _, id := range profile.SearchList {
		if device, ok := found[id]; ok {
			devices = append(devices, device)
		}
	}

	return devices, nil
}
