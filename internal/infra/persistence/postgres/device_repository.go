package postgres

import (
	"context"
	"strings"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewDeviceRepository is the constructor for deviceRepository outside a unit of work.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := lockingRead(ctx, repo.db, repo.forUpdate).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

func (repo *deviceRepository) FindDevicesByIDs(ctx context.Context, ids []string) (map[string]*entity.Device, error) {
	devices := make(map[string]*entity.Device, len(ids))
	if len(ids) == 0 {
		return devices, nil
	}

	var deviceModels []*model.DeviceModel
	if err := lockingRead(ctx, repo.db, repo.forUpdate).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by IDs")
	}

	for _, deviceM := range deviceModels {
		devices[deviceM.ID] = toDeviceDomain(deviceM)
	}

	return devices, nil
}

func (repo *deviceRepository) FindDevicesByShelf(ctx context.Context, shelfID string) ([]*entity.Device, error) {
	id, err := uuid.Parse(shelfID)
	if err != nil {
		return []*entity.Device{}, nil
	}

	var deviceModels []*model.DeviceModel
	if err := lockingRead(ctx, repo.db, repo.forUpdate).
		Where("shelf_id = ?", id).
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by shelf")
	}

	return toDeviceDomains(deviceModels), nil
}

func (repo *deviceRepository) SearchDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	query := repo.db.WithContext(ctx).Model(&model.DeviceModel{})

	if filter.ShelfID != "" {
		id, err := uuid.Parse(filter.ShelfID)
		if err != nil {
			return []*entity.Device{}, nil
		}
		query = query.Where("shelf_id = ?", id)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.IDPrefix != "" {
		query = query.Where("id LIKE ?", escapeLike(filter.IDPrefix)+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var deviceModels []*model.DeviceModel
	if err := query.Order("id ASC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search devices")
	}

	return toDeviceDomains(deviceModels), nil
}

func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM, err := fromDeviceDomain(device)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required device information")
		}

		return errors.Wrap(err, "failed to create device")
	}

	return nil
}

func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	deviceM, err := fromDeviceDomain(device)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Select("shelf_id", "shelf_name", "type", "status", "added_date", "removed_date", "history").
		Updates(deviceM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func (repo *deviceRepository) DeleteDevice(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	history := make([]entity.HistoryEntry, len(data.History))
	copy(history, data.History)

	return &entity.Device{
		ID:          data.ID,
		ShelfID:     data.ShelfID.String(),
		ShelfName:   data.ShelfName,
		Type:        entity.DeviceType(data.Type),
		Status:      entity.DeviceStatus(data.Status),
		AddedDate:   data.AddedDate,
		RemovedDate: data.RemovedDate,
		History:     history,
	}
}

func toDeviceDomains(deviceModels []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, len(deviceModels))
	for i, deviceM := range deviceModels {
		devices[i] = toDeviceDomain(deviceM)
	}

	return devices
}

func fromDeviceDomain(data *entity.Device) (*model.DeviceModel, error) {
	shelfID, err := uuid.Parse(data.ShelfID)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid shelf id %q for device %s", data.ShelfID, data.ID)
	}

	return &model.DeviceModel{
		ID:          data.ID,
		ShelfID:     shelfID,
		ShelfName:   data.ShelfName,
		Type:        data.Type.String(),
		Status:      data.Status.String(),
		AddedDate:   data.AddedDate,
		RemovedDate: data.RemovedDate,
		History:     datatypes.NewJSONSlice(data.History),
	}, nil
}
