package impl

import (
	"context"
	"testing"
	"time"

	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/errors"
	mockRepo "inventory/internal/mocks/repository"
	"inventory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			TxManager: txManager,
			Logger:    discardLogger(),
		}),
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				Upsert(ctx, mock.MatchedBy(func(profile *entity.UserProfile) bool {
					return profile.ID == testAdmin.UID && profile.Name == "Alice" && profile.Email == "alice@example.com"
				})).
				Run(func(_ context.Context, profile *entity.UserProfile) {
					profile.SearchList = []string{"X1"}
					profile.CreatedAt = created
				}).
				Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.GetProfile(ctx, testAdmin)

	require.NoError(t, err)
	assert.True(t, profile.IsAdmin)
	assert.Equal(t, []string{"X1"}, profile.SearchList)
	assert.Equal(t, created, profile.CreatedAt)
}

func TestProfileService_GetProfile_EmptySearchList(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)

			return fn(mockFactory)
		})

	profile, err := fx.service.GetProfile(ctx, testOperator)

	require.NoError(t, err)
	assert.False(t, profile.IsAdmin)
	assert.NotNil(t, profile.SearchList)
	assert.Empty(t, profile.SearchList)
}

func TestProfileService_GetProfile_StoreFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	_, err := fx.service.GetProfile(ctx, testOperator)

	assertAppError(t, err, domainerrors.ErrStoreCommitFailed)
}

func TestProfileService_GetProfile_Unauthenticated(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.GetProfile(context.Background(), &entity.Caller{})

	assertAppError(t, err, domainerrors.ErrUnauthenticated)
}
