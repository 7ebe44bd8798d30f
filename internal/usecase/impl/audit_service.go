package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"inventory/config"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

type auditService struct {
	eventSink

	txManager repository.TransactionManager
	repair    bool
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	Config    *config.Config
	TxManager repository.TransactionManager
	Recorder  service.OperationRecorder
	Logger    *slog.Logger
}

// NewAuditService creates the shelf counter audit.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		eventSink: eventSink{
			recorder: params.Recorder,
			logger:   params.Logger,
		},
		txManager: params.TxManager,
		repair:    params.Config.Audit != nil && params.Config.Audit.Repair,
	}
}

// VerifyShelves checks every shelf in its own unit so one busy shelf cannot
// hold the others back. With repair enabled the recount and the fix commit together.
func (s *auditService) VerifyShelves(ctx context.Context, shelfIDs []string) (_ []usecase.ShelfDrift, err error) {
	defer s.observe(opAuditShelves, time.Now(), &err)

	ids := slices.Clone(shelfIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	drifts := make([]usecase.ShelfDrift, 0)
	for _, id := range ids {
		if id == "" {
			continue
		}

		drift, found, err := s.verifyShelf(ctx, id)
		if err != nil {
			return drifts, err
		}
		if !found || drift.Stored == drift.Actual {
			continue
		}

		s.log(ctx).Warn("shelf item count drifted",
			slog.String("shelf_id", drift.ShelfID),
			slog.String("shelf_name", drift.ShelfName),
			slog.Int("stored", drift.Stored),
			slog.Int("actual", drift.Actual),
			slog.Bool("repaired", drift.Repaired),
		)
		drifts = append(drifts, drift)
	}

	return drifts, nil
}

func (s *auditService) verifyShelf(ctx context.Context, shelfID string) (usecase.ShelfDrift, bool, error) {
	var (
		drift usecase.ShelfDrift
		found bool
	)

	unit := func(repo repository.RepositoryFactory) error {
		shelfRepo := repo.NewShelfRepository()

		shelf, err := shelfRepo.FindShelfByID(ctx, shelfID)
		if errors.Is(err, repository.ErrShelfNotFound) {
			// Deleted after the event was published.
			return nil
		}
		if err != nil {
			return err
		}

		devices, err := repo.NewDeviceRepository().FindDevicesByShelf(ctx, shelfID)
		if err != nil {
			return err
		}

		found = true
		drift = usecase.ShelfDrift{
			ShelfID:   shelf.ID,
			ShelfName: shelf.Name,
			Stored:    shelf.ItemCount,
			Actual:    len(devices),
		}
		if !s.repair || drift.Stored == drift.Actual {
			return nil
		}

		shelf.ItemCount = drift.Actual
		if err := shelfRepo.UpdateShelf(ctx, shelf); err != nil {
			return err
		}
		drift.Repaired = true

		return nil
	}

	if s.repair {
		if err := s.txManager.Execute(ctx, unit); err != nil {
			return usecase.ShelfDrift{}, false, writeFailure(err)
		}

		return drift, found, nil
	}

	if err := s.txManager.ReadOnly(ctx, unit); err != nil {
		return usecase.ShelfDrift{}, false, readFailure(err)
	}

	return drift, found, nil
}
