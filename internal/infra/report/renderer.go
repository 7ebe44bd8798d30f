// Package report renders inventory exports.
package report

import (
	"bytes"
	"fmt"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/service"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	shelvesSheet = "shelves"
	devicesSheet = "devices"

	dateLayout = "2006-01-02 15:04"
)

type renderer struct{}

// NewRenderer creates the XLSX/PDF renderer.
func NewRenderer() service.ReportRenderer {
	return &renderer{}
}

// InventoryWorkbook writes one sheet of shelves and one of devices.
func (r *renderer) InventoryWorkbook(shelves []*entity.Shelf, devices []*entity.Device) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", shelvesSheet); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := f.NewSheet(devicesSheet); err != nil {
		return nil, errors.WithStack(err)
	}

	shelfRows := [][]any{{"ID", "Name", "Type", "Capacity", "Item Count", "Available"}}
	for _, shelf := range shelves {
		shelfRows = append(shelfRows, []any{
			shelf.ID, shelf.Name, shelf.Type.String(), shelf.Capacity, shelf.ItemCount, shelf.Available(),
		})
	}
	if err := writeRows(f, shelvesSheet, shelfRows); err != nil {
		return nil, err
	}

	deviceRows := [][]any{{"ID", "Type", "Status", "Shelf", "Added", "Removed"}}
	for _, device := range devices {
		removed := ""
		if device.RemovedDate != nil {
			removed = device.RemovedDate.Format(dateLayout)
		}
		deviceRows = append(deviceRows, []any{
			device.ID, device.Type.String(), device.Status.String(), device.ShelfName,
			device.AddedDate.Format(dateLayout), removed,
		})
	}
	if err := writeRows(f, devicesSheet, deviceRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}

	return nil
}

// DeviceHistoryPDF renders the device header and its history as a table.
func (r *renderer) DeviceHistoryPDF(device *entity.Device) ([]byte, error) {
	if device == nil {
		return nil, errors.New("device is nil")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Device History")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Device: %s", device.ID))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Type: %s", device.Type))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", device.Status))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Shelf: %s", device.ShelfName))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().UTC().Format(time.RFC3339)))
	pdf.Ln(8)

	widths := []float64{32, 22, 38, 22, 76}
	pdf.SetFont("Arial", "B", 9)
	for i, title := range []string{"Date", "Action", "User", "Source", "Details"} {
		pdf.CellFormat(widths[i], 6, title, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, entry := range device.History {
		pdf.CellFormat(widths[0], 6, entry.Date.Format(dateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, string(entry.Action), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(entry.UserName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, entry.Source, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[4], 6, tr(historyDetails(entry)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "write pdf")
	}

	return buf.Bytes(), nil
}

func historyDetails(entry entity.HistoryEntry) string {
	switch {
	case entry.Action == entity.HistoryActionMoved && entry.FromShelfName != "":
		return fmt.Sprintf("%s -> %s", entry.FromShelfName, entry.ShelfName)
	case entry.Description != "":
		return entry.Description
	default:
		return entry.ShelfName
	}
}
