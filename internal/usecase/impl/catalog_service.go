package impl

import (
	"context"
	"strings"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 50
	maxSearchLimit     = 500
)

type catalogService struct {
	txManager    repository.TransactionManager
	labelService service.LabelService
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LabelService service.LabelService
}

// NewCatalogService creates the read side of the inventory.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		labelService: params.LabelService,
	}
}

func (s *catalogService) GetShelf(ctx context.Context, shelfID string) (*entity.Shelf, error) {
	if shelfID == "" {
		return nil, domainerrors.NewValidation("shelf id is required")
	}

	var shelf *entity.Shelf
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		shelf, err = repo.NewShelfRepository().FindShelfByID(ctx, shelfID)

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return shelf, nil
}

func (s *catalogService) ListShelves(ctx context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domainerrors.NewValidation("invalid device type: " + filter.Type.String())
	}

	var shelves []*entity.Shelf
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		shelves, err = repo.NewShelfRepository().ListShelves(ctx, filter)

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return shelves, nil
}

// ListMoveTargets returns same-type shelves with a free slot, excluding the device's shelf.
func (s *catalogService) ListMoveTargets(ctx context.Context, deviceID string) ([]*entity.Shelf, error) {
	if deviceID == "" {
		return nil, domainerrors.NewValidation("device id is required")
	}

	var targets []*entity.Shelf
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		device, err := repo.NewDeviceRepository().FindDeviceByID(ctx, deviceID)
		if err != nil {
			return err
		}

		shelves, err := repo.NewShelfRepository().ListShelves(ctx, repository.ShelfFilter{
			Type:          device.Type,
			WithSpaceOnly: true,
		})
		if err != nil {
			return err
		}

		targets = make([]*entity.Shelf, 0, len(shelves))
		for _, shelf := range shelves {
			if shelf.ID != device.ShelfID {
				targets = append(targets, shelf)
			}
		}

		return nil
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return targets, nil
}

func (s *catalogService) GetDevice(ctx context.Context, deviceID string) (*entity.Device, error) {
	if deviceID == "" {
		return nil, domainerrors.NewValidation("device id is required")
	}

	var device *entity.Device
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		device, err = repo.NewDeviceRepository().FindDeviceByID(ctx, deviceID)

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return device, nil
}

func (s *catalogService) SearchDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	filter.IDPrefix = strings.TrimSpace(filter.IDPrefix)
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, domainerrors.NewValidation("invalid device status: " + filter.Status.String())
	}
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, domainerrors.NewValidation("invalid device type: " + filter.Type.String())
	}
	switch {
	case filter.Limit <= 0:
		filter.Limit = defaultSearchLimit
	case filter.Limit > maxSearchLimit:
		filter.Limit = maxSearchLimit
	}

	var devices []*entity.Device
	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		devices, err = repo.NewDeviceRepository().SearchDevices(ctx, filter)

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	return devices, nil
}

func (s *catalogService) ShelfLabel(ctx context.Context, shelfID string) ([]byte, error) {
	shelf, err := s.GetShelf(ctx, shelfID)
	if err != nil {
		return nil, err
	}

	png, err := s.labelService.GenerateShelfLabel(shelf.ID)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithMessage("failed to render shelf label").WithCause(err)
	}

	return png, nil
}

func (s *catalogService) ResolveLabel(ctx context.Context, payload string) (*entity.Shelf, error) {
	shelfID, err := s.labelService.ParseShelfLabel(strings.TrimSpace(payload))
	if err != nil {
		return nil, domainerrors.NewValidation("label is not a shelf label").WithCause(err)
	}

	return s.GetShelf(ctx, shelfID)
}
