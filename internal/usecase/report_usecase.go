package usecase

import (
	"context"

	"inventory/internal/domain/entity"
)

// ReportUsecase renders inventory documents.
type ReportUsecase interface {
	// InventoryWorkbook exports every shelf and device as XLSX. Admin only.
	InventoryWorkbook(ctx context.Context, actor *entity.Caller) ([]byte, error)

	// DeviceHistoryPDF renders one device's audit history.
	DeviceHistoryPDF(ctx context.Context, deviceID string) ([]byte, error)
}
