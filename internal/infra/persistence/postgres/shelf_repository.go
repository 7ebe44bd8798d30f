package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
	"inventory/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// shelfRepository implements the repository.ShelfRepository interface.
type shelfRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewShelfRepository is the constructor for shelfRepository outside a unit of work.
func NewShelfRepository(db *gorm.DB) repository.ShelfRepository {
	return &shelfRepository{db: db}
}

func (repo *shelfRepository) FindShelfByID(ctx context.Context, id string) (*entity.Shelf, error) {
	shelfID, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrShelfNotFound
	}

	var shelfM model.ShelfModel
	if err := lockingRead(ctx, repo.db, repo.forUpdate).
		Where("id = ?", shelfID).
		First(&shelfM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShelfNotFound
		}

		return nil, errors.Wrap(err, "failed to find shelf by ID")
	}

	return toShelfDomain(&shelfM), nil
}

func (repo *shelfRepository) ListShelves(ctx context.Context, filter repository.ShelfFilter) ([]*entity.Shelf, error) {
	query := repo.db.WithContext(ctx).Model(&model.ShelfModel{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.WithSpaceOnly {
		query = query.Where("item_count < capacity")
	}

	var shelfModels []*model.ShelfModel
	if err := query.Order("name ASC").Order("id ASC").Find(&shelfModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shelves")
	}

	shelves := make([]*entity.Shelf, len(shelfModels))
	for i, shelfM := range shelfModels {
		shelves[i] = toShelfDomain(shelfM)
	}

	return shelves, nil
}

func (repo *shelfRepository) CreateShelf(ctx context.Context, shelf *entity.Shelf) error {
	shelfM := fromShelfDomain(shelf)
	shelfM.ID = uuid.New()

	if err := repo.db.WithContext(ctx).Create(shelfM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrap(err, "shelf violates a check constraint")
		}

		return errors.Wrap(err, "failed to create shelf")
	}

	shelf.ID = shelfM.ID.String()
	shelf.CreatedAt = shelfM.CreatedAt
	shelf.UpdatedAt = shelfM.UpdatedAt

	return nil
}

func (repo *shelfRepository) UpdateShelf(ctx context.Context, shelf *entity.Shelf) error {
	shelfID, err := uuid.Parse(shelf.ID)
	if err != nil {
		return repository.ErrShelfNotFound
	}

	now := time.Now().UTC()
	result := repo.db.WithContext(ctx).
		Model(&model.ShelfModel{}).
		Where("id = ?", shelfID).
		Updates(map[string]any{
			"name":       shelf.Name,
			"capacity":   shelf.Capacity,
			"type":       shelf.Type.String(),
			"item_count": shelf.ItemCount,
			"updated_at": now,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update shelf")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShelfNotFound
	}

	shelf.UpdatedAt = now

	return nil
}

func (repo *shelfRepository) DeleteShelf(ctx context.Context, id string) error {
	shelfID, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrShelfNotFound
	}

	result := repo.db.WithContext(ctx).Where("id = ?", shelfID).Delete(&model.ShelfModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shelf")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShelfNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toShelfDomain(data *model.ShelfModel) *entity.Shelf {
	return &entity.Shelf{
		ID:        data.ID.String(),
		Name:      data.Name,
		Capacity:  data.Capacity,
		Type:      entity.DeviceType(data.Type),
		ItemCount: data.ItemCount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShelfDomain(data *entity.Shelf) *model.ShelfModel {
	return &model.ShelfModel{
		Name:      data.Name,
		Capacity:  data.Capacity,
		Type:      data.Type.String(),
		ItemCount: data.ItemCount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
