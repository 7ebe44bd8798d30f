package impl

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/errors"
	mockService "inventory/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportService_InventoryWorkbook(t *testing.T) {
	fx := createTestWorkflow(t)
	renderer := mockService.NewMockReportRenderer(t)
	reports := NewReportService(ReportServiceParams{TxManager: fx.store, Renderer: renderer})

	shelf := fx.createShelf(t, "A", 3, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X2 X1", entity.DeviceTypeONU)

	renderer.EXPECT().
		InventoryWorkbook(
			mock.MatchedBy(func(shelves []*entity.Shelf) bool {
				return len(shelves) == 1 && shelves[0].ItemCount == 2
			}),
			mock.MatchedBy(func(devices []*entity.Device) bool {
				return assert.ObjectsAreEqual([]string{"X1", "X2"}, deviceIDs(devices))
			}),
		).
		Return([]byte("xlsx"), nil)

	data, err := reports.InventoryWorkbook(context.Background(), testAdmin)

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
}

func TestReportService_InventoryWorkbookRequiresAdmin(t *testing.T) {
	fx := createTestWorkflow(t)
	renderer := mockService.NewMockReportRenderer(t)
	reports := NewReportService(ReportServiceParams{TxManager: fx.store, Renderer: renderer})

	_, err := reports.InventoryWorkbook(context.Background(), testOperator)
	assertAppError(t, err, domainerrors.ErrPermissionDenied)

	_, err = reports.InventoryWorkbook(context.Background(), nil)
	assertAppError(t, err, domainerrors.ErrUnauthenticated)
}

func TestReportService_DeviceHistoryPDF(t *testing.T) {
	fx := createTestWorkflow(t)
	renderer := mockService.NewMockReportRenderer(t)
	reports := NewReportService(ReportServiceParams{TxManager: fx.store, Renderer: renderer})

	shelf := fx.createShelf(t, "A", 3, entity.DeviceTypeSTB)
	fx.addDevices(t, shelf.ID, "S1", entity.DeviceTypeSTB)

	ctx := context.Background()

	renderer.EXPECT().
		DeviceHistoryPDF(mock.MatchedBy(func(device *entity.Device) bool { return device.ID == "S1" })).
		Return(nil, errors.New("font missing")).
		Once()

	_, err := reports.DeviceHistoryPDF(ctx, "S1")
	assertAppError(t, err, domainerrors.ErrInternalError)

	_, err = reports.DeviceHistoryPDF(ctx, "ghost")
	assertAppError(t, err, domainerrors.ErrDeviceNotFound)

	_, err = reports.DeviceHistoryPDF(ctx, "")
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}
