package impl

import (
	"context"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

type reportService struct {
	txManager repository.TransactionManager
	renderer  service.ReportRenderer
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Renderer  service.ReportRenderer
}

// NewReportService creates the inventory report use case.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager: params.TxManager,
		renderer:  params.Renderer,
	}
}

// InventoryWorkbook reads shelves and devices from one consistent view.
func (s *reportService) InventoryWorkbook(ctx context.Context, actor *entity.Caller) ([]byte, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	var (
		shelves []*entity.Shelf
		devices []*entity.Device
	)

	err := s.txManager.ReadOnly(ctx, func(repo repository.RepositoryFactory) error {
		var err error
		if shelves, err = repo.NewShelfRepository().ListShelves(ctx, repository.ShelfFilter{}); err != nil {
			return err
		}
		devices, err = repo.NewDeviceRepository().SearchDevices(ctx, repository.DeviceFilter{})

		return err
	})
	if err != nil {
		return nil, readFailure(err)
	}

	data, err := s.renderer.InventoryWorkbook(shelves, devices)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithMessage("failed to render inventory workbook").WithCause(err)
	}

	return data, nil
}

func (s *reportService) DeviceHistoryPDF(ctx context.Context, deviceID string) ([]byte, error) {
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

	data, err := s.renderer.DeviceHistoryPDF(device)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithMessage("failed to render device history").WithCause(err)
	}

	return data, nil
}
