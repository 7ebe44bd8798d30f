package postgres

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
	"inventory/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewUserRepository is the constructor for userRepository outside a unit of work.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var userM model.ProfileModel

	if err := lockingRead(ctx, repo.db, repo.forUpdate).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	searchList, err := repo.searchList(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserDomain(&userM, searchList), nil
}

func (repo *userRepository) Upsert(ctx context.Context, profile *entity.UserProfile) error {
	existing, err := repo.FindByID(ctx, profile.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		userM := &model.ProfileModel{ID: profile.ID, Name: profile.Name, Email: profile.Email}
		if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile.SearchList = []string{}
		profile.CreatedAt = userM.CreatedAt
		profile.UpdatedAt = userM.UpdatedAt

		return nil
	}
	if err != nil {
		return err
	}

	profile.SearchList = existing.SearchList
	profile.CreatedAt = existing.CreatedAt
	profile.UpdatedAt = existing.UpdatedAt

	if existing.Name == profile.Name && existing.Email == profile.Email {
		return nil
	}

	now := time.Now().UTC()
	if err := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{"name": profile.Name, "email": profile.Email, "updated_at": now}).Error; err != nil {
		return errors.Wrap(err, "failed to update user")
	}
	profile.UpdatedAt = now

	return nil
}

func (repo *userRepository) FindUserIDsSearching(ctx context.Context, deviceIDs []string) (map[string][]string, error) {
	matches := make(map[string][]string)
	if len(deviceIDs) == 0 {
		return matches, nil
	}

	var entries []*model.SearchListEntryModel
	if err := repo.db.WithContext(ctx).
		Where("device_id IN ?", deviceIDs).
		Order("user_id ASC").Order("device_id ASC").
		Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to query search lists")
	}

	for _, entry := range entries {
		matches[entry.UserID] = append(matches[entry.UserID], entry.DeviceID)
	}

	return matches, nil
}

func (repo *userRepository) AddToSearchList(ctx context.Context, userID string, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	db := repo.db.WithContext(ctx)

	// The profile row must exist for the foreign key.
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ProfileModel{ID: userID}).Error; err != nil {
		return errors.Wrap(err, "failed to ensure user")
	}

	entries := make([]*model.SearchListEntryModel, len(deviceIDs))
	for i, id := range deviceIDs {
		entries[i] = &model.SearchListEntryModel{UserID: userID, DeviceID: id}
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&entries).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to add to search list")
	}

	return nil
}

func (repo *userRepository) RemoveFromSearchList(ctx context.Context, userID string, deviceIDs []string) error {
	if len(deviceIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id IN ?", userID, deviceIDs).
		Delete(&model.SearchListEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove from search list")
	}

	return nil
}

func (repo *userRepository) searchList(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := repo.db.WithContext(ctx).
		Model(&model.SearchListEntryModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").Order("device_id ASC").
		Pluck("device_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load search list")
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.ProfileModel, searchList []string) *entity.UserProfile {
	return &entity.UserProfile{
		ID:         data.ID,
		Name:       data.Name,
		Email:      data.Email,
		SearchList: searchList,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
