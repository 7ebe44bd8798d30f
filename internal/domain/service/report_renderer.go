package service

import "inventory/internal/domain/entity"

// ReportRenderer renders inventory documents.
type ReportRenderer interface {
	// InventoryWorkbook renders shelves and devices as an XLSX workbook.
	InventoryWorkbook(shelves []*entity.Shelf, devices []*entity.Device) ([]byte, error)

	// DeviceHistoryPDF renders the audit history of one device.
	DeviceHistoryPDF(device *entity.Device) ([]byte, error)
}
