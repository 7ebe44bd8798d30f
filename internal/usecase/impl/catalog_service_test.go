package impl

import (
	"context"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
	"inventory/internal/infra/persistence/memory"
	mockService "inventory/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelfNames(shelves []*entity.Shelf) []string {
	names := make([]string, 0, len(shelves))
	for _, shelf := range shelves {
		names = append(names, shelf.Name)
	}

	return names
}

func TestCatalogService_ListMoveTargets(t *testing.T) {
	fx := createTestWorkflow(t)
	home := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	fx.createShelf(t, "C", 2, entity.DeviceTypeONU)
	full := fx.createShelf(t, "B", 1, entity.DeviceTypeONU)
	fx.createShelf(t, "D", 5, entity.DeviceTypeSTB)

	fx.addDevices(t, home.ID, "X1", entity.DeviceTypeONU)
	fx.addDevices(t, full.ID, "F1", entity.DeviceTypeONU)

	targets, err := fx.catalog.ListMoveTargets(context.Background(), "X1")

	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, shelfNames(targets))

	_, err = fx.catalog.ListMoveTargets(context.Background(), "ghost")
	assertAppError(t, err, domainerrors.ErrDeviceNotFound)
}

func TestCatalogService_ListShelves(t *testing.T) {
	fx := createTestWorkflow(t)
	fx.createShelf(t, "B", 1, entity.DeviceTypeONU)
	fx.createShelf(t, "A", 1, entity.DeviceTypeSTB)

	ctx := context.Background()

	all, err := fx.catalog.ListShelves(ctx, repository.ShelfFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, shelfNames(all))

	onus, err := fx.catalog.ListShelves(ctx, repository.ShelfFilter{Type: entity.DeviceTypeONU})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, shelfNames(onus))

	_, err = fx.catalog.ListShelves(ctx, repository.ShelfFilter{Type: "modem"})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_SearchDevices(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 10, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "ZTE1 ZTE2 HW1", entity.DeviceTypeONU)

	ctx := context.Background()
	_, err := fx.inventory.RetireDevice(ctx, testOperator, "ZTE2")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		filter repository.DeviceFilter
		want   []string
	}{
		{name: "prefix", filter: repository.DeviceFilter{IDPrefix: " ZTE "}, want: []string{"ZTE1", "ZTE2"}},
		{name: "status", filter: repository.DeviceFilter{Status: entity.DeviceStatusActive}, want: []string{"HW1", "ZTE1"}},
		{name: "limit", filter: repository.DeviceFilter{Limit: 1}, want: []string{"HW1"}},
		{name: "shelf", filter: repository.DeviceFilter{ShelfID: shelf.ID, IDPrefix: "HW"}, want: []string{"HW1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			devices, err := fx.catalog.SearchDevices(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, deviceIDs(devices))
		})
	}

	_, err = fx.catalog.SearchDevices(ctx, repository.DeviceFilter{Status: "lost"})
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetShelfAndDevice(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 1, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1", entity.DeviceTypeONU)

	ctx := context.Background()

	got, err := fx.catalog.GetShelf(ctx, shelf.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ItemCount)

	device, err := fx.catalog.GetDevice(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, shelf.ID, device.ShelfID)

	_, err = fx.catalog.GetShelf(ctx, "ghost")
	assertAppError(t, err, domainerrors.ErrShelfNotFound)

	_, err = fx.catalog.GetDevice(ctx, "")
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_Labels(t *testing.T) {
	store := memory.New(testMaxWrites)
	labels := mockService.NewMockLabelService(t)
	catalog := NewCatalogService(CatalogServiceParams{TxManager: store, LabelService: labels})

	ctx := context.Background()
	shelf := &entity.Shelf{Name: "A", Capacity: 1, Type: entity.DeviceTypeONU}
	require.NoError(t, store.Repositories().NewShelfRepository().CreateShelf(ctx, shelf))

	labels.EXPECT().GenerateShelfLabel(shelf.ID).Return([]byte("png"), nil).Once()

	png, err := catalog.ShelfLabel(ctx, shelf.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	labels.EXPECT().ParseShelfLabel("shelf:"+shelf.ID).Return(shelf.ID, nil).Once()

	resolved, err := catalog.ResolveLabel(ctx, " shelf:"+shelf.ID+"\n")
	require.NoError(t, err)
	assert.Equal(t, "A", resolved.Name)

	labels.EXPECT().ParseShelfLabel("garbage").Return("", errors.New("unknown label prefix")).Once()

	_, err = catalog.ResolveLabel(ctx, "garbage")
	assertAppError(t, err, domainerrors.ErrValidationFailed)
}
