package handler

import (
	"time"

	"inventory/internal/delivery/api/response"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
}

// ReportHandler serves inventory exports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{reportUC: params.ReportUC}
}

// InventoryWorkbook handles GET /reports/inventory.xlsx
func (h *ReportHandler) InventoryWorkbook(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	data, err := h.reportUC.InventoryWorkbook(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filename := "inventory-" + time.Now().UTC().Format("20060102") + ".xlsx"

	return response.Attachment(c, xlsxContentType, filename, data)
}
