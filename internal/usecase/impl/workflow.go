package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
)

// Operation names used for metrics and logs.
const (
	opAddDevices      = "add_devices"
	opMoveDevice      = "move_device"
	opRetireDevices   = "retire_devices"
	opRestoreDevice   = "restore_device"
	opDeleteDevice    = "delete_device"
	opCreateShelf     = "create_shelf"
	opUpdateShelf     = "update_shelf"
	opDeleteShelf     = "delete_shelf"
	opFlagDevices     = "flag_devices"
	opUnflagDevices   = "unflag_devices"
	opSetAdminClaim   = "set_admin_claim"
	opProvisionAdmins = "provision_admins"
	opAuditShelves    = "audit_shelves"
)

// mapRepositoryError converts repository sentinels into application errors.
// It returns nil when err is not a known sentinel.
func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, repository.ErrShelfNotFound):
		return domainerrors.ErrShelfNotFound
	case errors.Is(err, repository.ErrDeviceNotFound):
		return domainerrors.ErrDeviceNotFound
	case errors.Is(err, repository.ErrUserNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, repository.ErrDuplicateDevice):
		return domainerrors.ErrDuplicateID
	default:
		return nil
	}
}

// writeFailure turns anything escaping a mutating unit into an AppError.
func writeFailure(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if mapped := mapRepositoryError(err); mapped != nil {
		return mapped
	}

	return domainerrors.NewStoreCommitFailure(err)
}

// readFailure turns anything escaping a read into an AppError.
func readFailure(err error) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if mapped := mapRepositoryError(err); mapped != nil {
		return mapped
	}

	return domainerrors.ErrInternalError.WithCause(err)
}

func batchLimitExceeded(writes, limit int) error {
	return domainerrors.ErrBatchLimitExceeded.
		WithMessagef("operation needs %d writes, the store allows %d per commit", writes, limit).
		WithDetails(map[string]int{"writes": writes, "limit": limit})
}

func requireActor(actor *entity.Caller) error {
	if actor == nil || actor.UID == "" {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

// requireAdmin guards the operations the API exposes to admins only.
func requireAdmin(actor *entity.Caller) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if !actor.IsAdmin {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

func historyEntry(action entity.HistoryAction, actor *entity.Caller, at time.Time) entity.HistoryEntry {
	entry := entity.HistoryEntry{
		Action: action,
		Date:   at,
		Source: entity.HistorySourceManual,
	}
	if actor != nil {
		entry.UserID = actor.UID
		entry.UserName = actor.DisplayName()
	}

	return entry
}

// eventSink publishes committed changes and records metrics. Both are best-effort.
type eventSink struct {
	publisher service.EventPublisher
	recorder  service.OperationRecorder
	logger    *slog.Logger
}

func (s *eventSink) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *eventSink) publish(ctx context.Context, event *service.InventoryEvent) {
	if s.publisher == nil || event == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	// The change is committed; a lost event must not fail the request.
	if err := s.publisher.PublishInventoryEvent(context.WithoutCancel(ctx), event); err != nil {
		s.log(ctx).Warn("failed to publish inventory event",
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}
}

func (s *eventSink) observe(operation string, start time.Time, err *error) {
	if s.recorder == nil {
		return
	}
	s.recorder.Observe(operation, *err, time.Since(start))
}

func (s *eventSink) affected(operation string, count int) {
	if s.recorder == nil || count == 0 {
		return
	}
	s.recorder.DevicesAffected(operation, count)
}
