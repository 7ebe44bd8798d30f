package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	"inventory/internal/infra/persistence/memory"
	mockService "inventory/internal/mocks/service"
	"inventory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxWrites = 10

var (
	testAdmin    = &entity.Caller{UID: "admin-1", Name: "Alice", Email: "alice@example.com", IsAdmin: true}
	testOperator = &entity.Caller{UID: "user-1", Name: "Bob", Email: "bob@example.com"}
)

// workflowFixtures wires the workflow services to one in-memory store.
type workflowFixtures struct {
	store      *memory.Store
	inventory  usecase.InventoryUsecase
	searchList usecase.SearchListUsecase
	catalog    usecase.CatalogUsecase
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestWorkflow(t *testing.T) workflowFixtures {
	t.Helper()

	store := memory.New(testMaxWrites)
	logger := discardLogger()

	inventory := NewInventoryService(InventoryServiceParams{
		TxManager: store,
		Logger:    logger,
	})
	searchList := NewSearchListService(SearchListServiceParams{
		TxManager: store,
		Inventory: inventory,
		Logger:    logger,
	})
	catalog := NewCatalogService(CatalogServiceParams{
		TxManager: store,
	})

	return workflowFixtures{
		store:      store,
		inventory:  inventory,
		searchList: searchList,
		catalog:    catalog,
	}
}

func (fx workflowFixtures) createShelf(t *testing.T, name string, capacity int, deviceType entity.DeviceType) *entity.Shelf {
	t.Helper()

	shelf, err := fx.inventory.CreateShelf(context.Background(), testAdmin, usecase.ShelfInput{
		Name:     name,
		Capacity: capacity,
		Type:     deviceType,
	})
	require.NoError(t, err)

	return shelf
}

func (fx workflowFixtures) addDevices(t *testing.T, shelfID, rawIDs string, deviceType entity.DeviceType) *usecase.AddDevicesOutput {
	t.Helper()

	output, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  rawIDs,
		ShelfID: shelfID,
		Type:    deviceType,
	})
	require.NoError(t, err)

	return output
}

func (fx workflowFixtures) shelf(t *testing.T, id string) *entity.Shelf {
	t.Helper()

	shelf, err := fx.store.Repositories().NewShelfRepository().FindShelfByID(context.Background(), id)
	require.NoError(t, err)

	return shelf
}

func (fx workflowFixtures) device(t *testing.T, id string) *entity.Device {
	t.Helper()

	device, err := fx.store.Repositories().NewDeviceRepository().FindDeviceByID(context.Background(), id)
	require.NoError(t, err)

	return device
}

func assertAppError(t *testing.T, err error, want *domainerrors.BaseError) domainerrors.AppError {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, want)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, want.ErrorCode(), appErr.ErrorCode())

	return appErr
}

func TestInventoryService_AddDevices_CapacityExceeded(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 2, entity.DeviceTypeONU)

	output := fx.addDevices(t, shelf.ID, "X1, X2", entity.DeviceTypeONU)
	assert.Equal(t, 2, output.Shelf.ItemCount)
	require.Len(t, output.Devices, 2)
	assert.Equal(t, "X1", output.Devices[0].ID)
	assert.Equal(t, "X2", output.Devices[1].ID)

	_, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  "X3",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})

	appErr := assertAppError(t, err, domainerrors.ErrCapacityExceeded)
	assert.Equal(t, domainerrors.CapacityDetails{ShelfName: "A-01", Requested: 1, Available: 0}, appErr.Details())
	assert.Equal(t, 2, fx.shelf(t, shelf.ID).ItemCount)

	_, err = fx.store.Repositories().NewDeviceRepository().FindDeviceByID(context.Background(), "X3")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestInventoryService_AddDevices_DuplicateID(t *testing.T) {
	fx := createTestWorkflow(t)
	shelfA := fx.createShelf(t, "A-01", 5, entity.DeviceTypeONU)
	shelfB := fx.createShelf(t, "B-02", 5, entity.DeviceTypeONU)

	fx.addDevices(t, shelfA.ID, "X1", entity.DeviceTypeONU)

	_, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  "X1 X9",
		ShelfID: shelfB.ID,
		Type:    entity.DeviceTypeONU,
	})

	appErr := assertAppError(t, err, domainerrors.ErrDuplicateID)
	assert.Equal(t, domainerrors.IDsDetails{IDs: []string{"X1"}}, appErr.Details())

	device := fx.device(t, "X1")
	assert.Equal(t, shelfA.ID, device.ShelfID)
	assert.Equal(t, 1, fx.shelf(t, shelfA.ID).ItemCount)
	assert.Equal(t, 0, fx.shelf(t, shelfB.ID).ItemCount)

	_, err = fx.store.Repositories().NewDeviceRepository().FindDeviceByID(context.Background(), "X9")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestInventoryService_AddDevices_DuplicateWithinInputCollapses(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 2, entity.DeviceTypeSTB)

	output := fx.addDevices(t, shelf.ID, "S1;S1\nS1", entity.DeviceTypeSTB)

	require.Len(t, output.Devices, 1)
	assert.Equal(t, 1, output.Shelf.ItemCount)
}

func TestInventoryService_AddDevices_RecordsCreatedHistory(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 2, entity.DeviceTypeONU)

	fx.addDevices(t, shelf.ID, "X1", entity.DeviceTypeONU)

	device := fx.device(t, "X1")
	assert.Equal(t, entity.DeviceStatusActive, device.Status)
	assert.Equal(t, "A-01", device.ShelfName)
	assert.Nil(t, device.RemovedDate)
	require.Len(t, device.History, 1)
	assert.Equal(t, entity.HistoryActionCreated, device.History[0].Action)
	assert.Equal(t, testOperator.UID, device.History[0].UserID)
	assert.Equal(t, "Bob", device.History[0].UserName)
	assert.Equal(t, entity.HistorySourceManual, device.History[0].Source)
}

func TestInventoryService_AddDevices_Validation(t *testing.T) {
	fx := createTestWorkflow(t)
	onu := fx.createShelf(t, "A-01", 2, entity.DeviceTypeONU)

	testCases := []struct {
		name  string
		actor *entity.Caller
		input usecase.AddDevicesInput
		want  *domainerrors.BaseError
	}{
		{
			name:  "no caller",
			actor: nil,
			input: usecase.AddDevicesInput{RawIDs: "X1", ShelfID: onu.ID, Type: entity.DeviceTypeONU},
			want:  domainerrors.ErrUnauthenticated,
		},
		{
			name:  "empty id list",
			actor: testOperator,
			input: usecase.AddDevicesInput{RawIDs: " ,; ", ShelfID: onu.ID, Type: entity.DeviceTypeONU},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown type",
			actor: testOperator,
			input: usecase.AddDevicesInput{RawIDs: "X1", ShelfID: onu.ID, Type: "router"},
			want:  domainerrors.ErrValidationFailed,
		},
		{
			name:  "type mismatch",
			actor: testOperator,
			input: usecase.AddDevicesInput{RawIDs: "X1", ShelfID: onu.ID, Type: entity.DeviceTypeSTB},
			want:  domainerrors.ErrTypeMismatch,
		},
		{
			name:  "missing shelf",
			actor: testOperator,
			input: usecase.AddDevicesInput{RawIDs: "X1", ShelfID: "nope", Type: entity.DeviceTypeONU},
			want:  domainerrors.ErrShelfNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.inventory.AddDevices(context.Background(), tc.actor, tc.input)
			assertAppError(t, err, tc.want)
		})
	}

	assert.Equal(t, 0, fx.shelf(t, onu.ID).ItemCount)
}

func TestInventoryService_AddDevices_RejectsUnstorableIDs(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 5, entity.DeviceTypeONU)

	_, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  "X1 rack/X2 __X3__",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})

	appErr := assertAppError(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, domainerrors.IDsDetails{IDs: []string{"rack/X2", "__X3__"}}, appErr.Details())
	assert.Equal(t, 0, fx.shelf(t, shelf.ID).ItemCount)

	found, err := fx.store.Repositories().NewDeviceRepository().FindDevicesByIDs(context.Background(), []string{"X1"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestInventoryService_AddDevices_BatchLimitExceeded(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 100, entity.DeviceTypeONU)

	// 10 devices plus the shelf counter is one write over the limit.
	_, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  "D0 D1 D2 D3 D4 D5 D6 D7 D8 D9",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})

	appErr := assertAppError(t, err, domainerrors.ErrBatchLimitExceeded)
	assert.Equal(t, map[string]int{"writes": 11, "limit": testMaxWrites}, appErr.Details())
	assert.Equal(t, 0, fx.shelf(t, shelf.ID).ItemCount)

	output := fx.addDevices(t, shelf.ID, "D0 D1 D2 D3 D4 D5 D6 D7 D8", entity.DeviceTypeONU)
	assert.Equal(t, 9, output.Shelf.ItemCount)
}

func TestInventoryService_AddDevices_CommitFailureLeavesNothing(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 5, entity.DeviceTypeONU)

	fx.store.SetCommitHook(func(int) error { return errors.New("deadline exceeded") })
	_, err := fx.inventory.AddDevices(context.Background(), testOperator, usecase.AddDevicesInput{
		RawIDs:  "X1 X2",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})
	fx.store.SetCommitHook(nil)

	appErr := assertAppError(t, err, domainerrors.ErrStoreCommitFailed)
	assert.Contains(t, appErr.Message(), "deadline exceeded")
	assert.Equal(t, 0, fx.shelf(t, shelf.ID).ItemCount)

	found, err := fx.store.Repositories().NewDeviceRepository().FindDevicesByIDs(context.Background(), []string{"X1", "X2"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestInventoryService_MoveDevice_Success(t *testing.T) {
	fx := createTestWorkflow(t)
	shelfA := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	shelfB := fx.createShelf(t, "B", 2, entity.DeviceTypeONU)
	fx.addDevices(t, shelfA.ID, "X1", entity.DeviceTypeONU)

	moved, err := fx.inventory.MoveDevice(context.Background(), testOperator, "X1", shelfB.ID)

	require.NoError(t, err)
	assert.Equal(t, shelfB.ID, moved.ShelfID)
	assert.Equal(t, "B", moved.ShelfName)
	assert.Equal(t, 0, fx.shelf(t, shelfA.ID).ItemCount)
	assert.Equal(t, 1, fx.shelf(t, shelfB.ID).ItemCount)

	device := fx.device(t, "X1")
	assert.Equal(t, shelfB.ID, device.ShelfID)
	require.Len(t, device.History, 2)
	last := device.History[1]
	assert.Equal(t, entity.HistoryActionMoved, last.Action)
	assert.Equal(t, "A", last.FromShelfName)
	assert.Equal(t, "B", last.ShelfName)
}

func TestInventoryService_MoveDevice_Rejections(t *testing.T) {
	fx := createTestWorkflow(t)
	shelfA := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	full := fx.createShelf(t, "Full", 1, entity.DeviceTypeONU)
	stb := fx.createShelf(t, "STB", 2, entity.DeviceTypeSTB)
	fx.addDevices(t, shelfA.ID, "X1", entity.DeviceTypeONU)
	fx.addDevices(t, full.ID, "F1", entity.DeviceTypeONU)

	testCases := []struct {
		name     string
		deviceID string
		targetID string
		want     *domainerrors.BaseError
	}{
		{name: "same shelf", deviceID: "X1", targetID: shelfA.ID, want: domainerrors.ErrValidationFailed},
		{name: "target full", deviceID: "X1", targetID: full.ID, want: domainerrors.ErrCapacityExceeded},
		{name: "type mismatch", deviceID: "X1", targetID: stb.ID, want: domainerrors.ErrTypeMismatch},
		{name: "missing device", deviceID: "nope", targetID: stb.ID, want: domainerrors.ErrDeviceNotFound},
		{name: "missing target", deviceID: "X1", targetID: "nope", want: domainerrors.ErrShelfNotFound},
		{name: "empty ids", deviceID: "", targetID: "", want: domainerrors.ErrValidationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.inventory.MoveDevice(context.Background(), testOperator, tc.deviceID, tc.targetID)
			assertAppError(t, err, tc.want)
		})
	}

	assert.Equal(t, 1, fx.shelf(t, shelfA.ID).ItemCount)
	assert.Equal(t, 1, fx.shelf(t, full.ID).ItemCount)
	assert.Equal(t, 0, fx.shelf(t, stb.ID).ItemCount)
	assert.Len(t, fx.device(t, "X1").History, 1)
}

func TestInventoryService_MoveDevice_InconsistentOriginCounter(t *testing.T) {
	fx := createTestWorkflow(t)
	shelfA := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	shelfB := fx.createShelf(t, "B", 2, entity.DeviceTypeONU)
	fx.addDevices(t, shelfA.ID, "X1", entity.DeviceTypeONU)

	drifted := fx.shelf(t, shelfA.ID)
	drifted.ItemCount = 0
	require.NoError(t, fx.store.Repositories().NewShelfRepository().UpdateShelf(context.Background(), drifted))

	_, err := fx.inventory.MoveDevice(context.Background(), testOperator, "X1", shelfB.ID)

	assertAppError(t, err, domainerrors.ErrInternalConsistency)
	assert.Equal(t, 0, fx.shelf(t, shelfB.ID).ItemCount)
	assert.Equal(t, shelfA.ID, fx.device(t, "X1").ShelfID)
}

func TestInventoryService_RetireAll_SearchList(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 5, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2 X3", entity.DeviceTypeONU)

	ctx := context.Background()
	_, err := fx.searchList.AddToSearchList(ctx, testOperator, "X1,X2,X3")
	require.NoError(t, err)

	other := &entity.Caller{UID: "user-2", Name: "Carol"}
	_, err = fx.searchList.AddToSearchList(ctx, other, "X2")
	require.NoError(t, err)

	var commits []int
	fx.store.SetCommitHook(func(writes int) error {
		commits = append(commits, writes)

		return nil
	})
	retired, err := fx.searchList.RetireSearchList(ctx, testOperator)
	fx.store.SetCommitHook(nil)

	require.NoError(t, err)
	require.Len(t, retired, 3)
	// Three devices and two search lists in a single commit.
	assert.Equal(t, []int{5}, commits)

	for _, id := range []string{"X1", "X2", "X3"} {
		device := fx.device(t, id)
		assert.Equal(t, entity.DeviceStatusRemoved, device.Status, id)
		assert.NotNil(t, device.RemovedDate, id)
		assert.Equal(t, entity.HistoryActionRemoved, device.History[len(device.History)-1].Action, id)
	}

	// A retired device keeps its shelf slot.
	assert.Equal(t, 3, fx.shelf(t, shelf.ID).ItemCount)

	list, err := fx.searchList.GetSearchList(ctx, testOperator)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = fx.searchList.GetSearchList(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInventoryService_RetireAll_AlreadyRemovedAbortsBatch(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 5, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2", entity.DeviceTypeONU)

	ctx := context.Background()
	_, err := fx.inventory.RetireDevice(ctx, testOperator, "X1")
	require.NoError(t, err)

	_, err = fx.inventory.RetireAll(ctx, testOperator, []string{"X2", "X1"})

	appErr := assertAppError(t, err, domainerrors.ErrAlreadyRemoved)
	assert.Equal(t, domainerrors.IDsDetails{IDs: []string{"X1"}}, appErr.Details())
	assert.Equal(t, entity.DeviceStatusActive, fx.device(t, "X2").Status)

	_, err = fx.inventory.RetireAll(ctx, testOperator, []string{"X2", "ghost"})
	appErr = assertAppError(t, err, domainerrors.ErrDeviceNotFound)
	assert.Equal(t, domainerrors.IDsDetails{IDs: []string{"ghost"}}, appErr.Details())
}

func TestInventoryService_RetireAll_BatchLimitIncludesSearchLists(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 20, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2 X3 X4 X5 X6", entity.DeviceTypeONU)

	ctx := context.Background()
	for _, uid := range []string{"u1", "u2", "u3", "u4", "u5"} {
		_, err := fx.searchList.AddToSearchList(ctx, &entity.Caller{UID: uid}, "X1")
		require.NoError(t, err)
	}

	// Six devices and five search lists need eleven writes.
	_, err := fx.inventory.RetireAll(ctx, testOperator, []string{"X1", "X2", "X3", "X4", "X5", "X6"})

	assertAppError(t, err, domainerrors.ErrBatchLimitExceeded)
	assert.Equal(t, entity.DeviceStatusActive, fx.device(t, "X1").Status)
}

func TestInventoryService_RestoreDevice(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1", entity.DeviceTypeONU)

	ctx := context.Background()
	_, err := fx.inventory.RestoreDevice(ctx, testOperator, "X1")
	assertAppError(t, err, domainerrors.ErrNotRemoved)

	_, err = fx.inventory.RetireDevice(ctx, testOperator, "X1")
	require.NoError(t, err)

	restored, err := fx.inventory.RestoreDevice(ctx, testOperator, "X1")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusActive, restored.Status)
	assert.Nil(t, restored.RemovedDate)

	device := fx.device(t, "X1")
	require.Len(t, device.History, 3)
	assert.Equal(t, entity.HistoryActionRestored, device.History[2].Action)
	assert.Equal(t, 1, fx.shelf(t, shelf.ID).ItemCount)
}

func TestInventoryService_DeleteDevice(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2", entity.DeviceTypeONU)

	ctx := context.Background()
	_, err := fx.searchList.AddToSearchList(ctx, testOperator, "X1 X2")
	require.NoError(t, err)

	require.NoError(t, fx.inventory.DeleteDevice(ctx, testAdmin, "X1"))

	assert.Equal(t, 1, fx.shelf(t, shelf.ID).ItemCount)
	_, err = fx.store.Repositories().NewDeviceRepository().FindDeviceByID(ctx, "X1")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	profile, err := fx.store.Repositories().NewUserRepository().FindByID(ctx, testOperator.UID)
	require.NoError(t, err)
	assert.Equal(t, []string{"X2"}, profile.SearchList)

	err = fx.inventory.DeleteDevice(ctx, testAdmin, "X1")
	assertAppError(t, err, domainerrors.ErrDeviceNotFound)
}

func TestInventoryService_DeleteDevice_ZeroCounterIsInconsistent(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 2, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1", entity.DeviceTypeONU)

	drifted := fx.shelf(t, shelf.ID)
	drifted.ItemCount = 0
	require.NoError(t, fx.store.Repositories().NewShelfRepository().UpdateShelf(context.Background(), drifted))

	err := fx.inventory.DeleteDevice(context.Background(), testAdmin, "X1")

	assertAppError(t, err, domainerrors.ErrInternalConsistency)
	assert.Equal(t, 0, fx.shelf(t, shelf.ID).ItemCount)
	assert.NotNil(t, fx.device(t, "X1"))
}

func TestInventoryService_UpdateShelf(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 3, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2", entity.DeviceTypeONU)

	ctx := context.Background()

	t.Run("type change on a non-empty shelf", func(t *testing.T) {
		_, err := fx.inventory.UpdateShelf(ctx, testAdmin, shelf.ID, usecase.ShelfInput{
			Name: "A", Capacity: 3, Type: entity.DeviceTypeSTB,
		})
		assertAppError(t, err, domainerrors.ErrTypeChangeNotAllowed)
		assert.Equal(t, entity.DeviceTypeONU, fx.shelf(t, shelf.ID).Type)
	})

	t.Run("capacity below the item count is reported", func(t *testing.T) {
		output, err := fx.inventory.UpdateShelf(ctx, testAdmin, shelf.ID, usecase.ShelfInput{
			Name: " A-renamed ", Capacity: 1, Type: "ONU",
		})
		require.NoError(t, err)
		assert.True(t, output.OverCapacity)
		assert.Equal(t, "A-renamed", output.Shelf.Name)
		assert.Equal(t, 2, output.Shelf.ItemCount)
	})

	t.Run("invalid capacity", func(t *testing.T) {
		_, err := fx.inventory.UpdateShelf(ctx, testAdmin, shelf.ID, usecase.ShelfInput{
			Name: "A", Capacity: 0, Type: entity.DeviceTypeONU,
		})
		assertAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("type change on an empty shelf", func(t *testing.T) {
		empty := fx.createShelf(t, "E", 1, entity.DeviceTypeONU)
		output, err := fx.inventory.UpdateShelf(ctx, testAdmin, empty.ID, usecase.ShelfInput{
			Name: "E", Capacity: 1, Type: entity.DeviceTypeSTB,
		})
		require.NoError(t, err)
		assert.Equal(t, entity.DeviceTypeSTB, output.Shelf.Type)
		assert.False(t, output.OverCapacity)
	})
}

func TestInventoryService_DeleteShelf_RemovesDevices(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 5, entity.DeviceTypeONU)
	keep := fx.createShelf(t, "B", 5, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2 X3", entity.DeviceTypeONU)
	fx.addDevices(t, keep.ID, "K1", entity.DeviceTypeONU)

	ctx := context.Background()
	output, err := fx.inventory.DeleteShelf(ctx, testAdmin, shelf.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, output.DeletedDevices)

	_, err = fx.store.Repositories().NewShelfRepository().FindShelfByID(ctx, shelf.ID)
	assert.ErrorIs(t, err, repository.ErrShelfNotFound)

	remaining, err := fx.store.Repositories().NewDeviceRepository().SearchDevices(ctx, repository.DeviceFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "K1", remaining[0].ID)
}

func TestInventoryService_DeleteShelf_CommitFailureIsAtomic(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 5, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1 X2", entity.DeviceTypeONU)

	fx.store.SetCommitHook(func(writes int) error {
		return errors.Errorf("commit of %d writes rejected", writes)
	})
	_, err := fx.inventory.DeleteShelf(context.Background(), testAdmin, shelf.ID)
	fx.store.SetCommitHook(nil)

	appErr := assertAppError(t, err, domainerrors.ErrStoreCommitFailed)
	assert.Contains(t, appErr.Message(), "commit of 3 writes rejected")

	assert.Equal(t, 2, fx.shelf(t, shelf.ID).ItemCount)
	assert.Equal(t, shelf.ID, fx.device(t, "X1").ShelfID)
	assert.Equal(t, shelf.ID, fx.device(t, "X2").ShelfID)
}

func TestInventoryService_DeleteShelf_BatchLimit(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A", 20, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "A1 A2 A3 A4 A5", entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "B1 B2 B3 B4 B5", entity.DeviceTypeONU)

	_, err := fx.inventory.DeleteShelf(context.Background(), testAdmin, shelf.ID)

	assertAppError(t, err, domainerrors.ErrBatchLimitExceeded)
	assert.Equal(t, 10, fx.shelf(t, shelf.ID).ItemCount)
}

func TestInventoryService_AdminOperationsRequireClaim(t *testing.T) {
	fx := createTestWorkflow(t)
	shelf := fx.createShelf(t, "A-01", 5, entity.DeviceTypeONU)
	fx.addDevices(t, shelf.ID, "X1", entity.DeviceTypeONU)
	ctx := context.Background()

	operations := []struct {
		name string
		run  func(actor *entity.Caller) error
	}{
		{
			name: "create shelf",
			run: func(actor *entity.Caller) error {
				_, err := fx.inventory.CreateShelf(ctx, actor, usecase.ShelfInput{Name: "B-01", Capacity: 2, Type: entity.DeviceTypeSTB})
				return err
			},
		},
		{
			name: "update shelf",
			run: func(actor *entity.Caller) error {
				_, err := fx.inventory.UpdateShelf(ctx, actor, shelf.ID, usecase.ShelfInput{Name: "A-02", Capacity: 9, Type: entity.DeviceTypeONU})
				return err
			},
		},
		{
			name: "delete shelf",
			run: func(actor *entity.Caller) error {
				_, err := fx.inventory.DeleteShelf(ctx, actor, shelf.ID)
				return err
			},
		},
		{
			name: "delete device",
			run: func(actor *entity.Caller) error {
				return fx.inventory.DeleteDevice(ctx, actor, "X1")
			},
		},
	}

	for _, op := range operations {
		t.Run(op.name, func(t *testing.T) {
			assertAppError(t, op.run(testOperator), domainerrors.ErrPermissionDenied)
			assertAppError(t, op.run(nil), domainerrors.ErrUnauthenticated)
		})
	}

	stored := fx.shelf(t, shelf.ID)
	assert.Equal(t, "A-01", stored.Name)
	assert.Equal(t, 5, stored.Capacity)
	assert.Equal(t, 1, stored.ItemCount)
	assert.Equal(t, entity.DeviceStatusActive, fx.device(t, "X1").Status)

	shelves, err := fx.store.Repositories().NewShelfRepository().ListShelves(ctx, repository.ShelfFilter{})
	require.NoError(t, err)
	assert.Len(t, shelves, 1)
}

func TestInventoryService_CountersStayWithinBounds(t *testing.T) {
	fx := createTestWorkflow(t)
	shelfA := fx.createShelf(t, "A", 3, entity.DeviceTypeSTB)
	shelfB := fx.createShelf(t, "B", 3, entity.DeviceTypeSTB)

	ctx := context.Background()
	fx.addDevices(t, shelfA.ID, "S1 S2 S3", entity.DeviceTypeSTB)

	for _, id := range []string{"S1", "S2", "S3"} {
		_, err := fx.inventory.MoveDevice(ctx, testOperator, id, shelfB.ID)
		require.NoError(t, err)
	}
	_, err := fx.inventory.MoveDevice(ctx, testOperator, "S1", shelfB.ID)
	require.Error(t, err)

	require.NoError(t, fx.inventory.DeleteDevice(ctx, testAdmin, "S2"))

	devices, err := fx.store.Repositories().NewDeviceRepository().SearchDevices(ctx, repository.DeviceFilter{})
	require.NoError(t, err)

	counts := map[string]int{}
	for _, device := range devices {
		counts[device.ShelfID]++
	}
	for _, id := range []string{shelfA.ID, shelfB.ID} {
		shelf := fx.shelf(t, id)
		assert.GreaterOrEqual(t, shelf.ItemCount, 0)
		assert.LessOrEqual(t, shelf.ItemCount, shelf.Capacity)
		assert.Equal(t, counts[id], shelf.ItemCount, shelf.Name)
	}
}

func TestInventoryService_PublishesAndRecords(t *testing.T) {
	store := memory.New(testMaxWrites)
	publisher := mockService.NewMockEventPublisher(t)
	recorder := mockService.NewMockOperationRecorder(t)

	inventory := NewInventoryService(InventoryServiceParams{
		TxManager: store,
		Publisher: publisher,
		Recorder:  recorder,
		Logger:    discardLogger(),
	})

	ctx := context.Background()

	publisher.EXPECT().
		PublishInventoryEvent(mock.Anything, mock.MatchedBy(func(event *service.InventoryEvent) bool {
			return event.Type == service.EventShelfCreated
		})).
		Return(nil).
		Once()
	recorder.EXPECT().Observe(opCreateShelf, nil, mock.Anything).Once()

	shelf, err := inventory.CreateShelf(ctx, testAdmin, usecase.ShelfInput{Name: "A", Capacity: 2, Type: entity.DeviceTypeONU})
	require.NoError(t, err)

	// A failed publish does not fail the committed change.
	publisher.EXPECT().
		PublishInventoryEvent(mock.Anything, mock.MatchedBy(func(event *service.InventoryEvent) bool {
			return event.Type == service.EventDevicesAdded &&
				assert.ObjectsAreEqual([]string{"X1", "X2"}, event.DeviceIDs) &&
				event.ActorID == testOperator.UID
		})).
		Return(errors.New("topic unavailable")).
		Once()
	recorder.EXPECT().DevicesAffected(opAddDevices, 2).Once()
	recorder.EXPECT().Observe(opAddDevices, nil, mock.Anything).Once()

	_, err = inventory.AddDevices(ctx, testOperator, usecase.AddDevicesInput{
		RawIDs:  "X1 X2",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})
	require.NoError(t, err)

	recorder.EXPECT().
		Observe(opAddDevices, mock.MatchedBy(func(err error) bool {
			return errors.Is(err, domainerrors.ErrCapacityExceeded)
		}), mock.Anything).
		Once()

	_, err = inventory.AddDevices(ctx, testOperator, usecase.AddDevicesInput{
		RawIDs:  "X3",
		ShelfID: shelf.ID,
		Type:    entity.DeviceTypeONU,
	})
	assertAppError(t, err, domainerrors.ErrCapacityExceeded)
}
