package impl

import (
	"context"
	"testing"

	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	mockService "inventory/internal/mocks/service"
	"inventory/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service  usecase.AdminUsecase
	identity *mockService.MockIdentityProvider
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	identity := mockService.NewMockIdentityProvider(t)

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			IdentityProvider: identity,
			Logger:           discardLogger(),
		}),
		identity: identity,
	}
}

func TestAdminService_SetAdminClaim_NonAdminDenied(t *testing.T) {
	fx := createTestAdminService(t)

	output, err := fx.service.SetAdminClaim(context.Background(), testOperator, "target-uid", true)

	assert.Nil(t, output)
	assertAppError(t, err, domainerrors.ErrPermissionDenied)
	fx.identity.AssertNotCalled(t, "SetCustomClaims", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminService_SetAdminClaim_Unauthenticated(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.SetAdminClaim(context.Background(), nil, "target-uid", true)

	assertAppError(t, err, domainerrors.ErrUnauthenticated)
}

func TestAdminService_SetAdminClaim_EmptyTarget(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.SetAdminClaim(context.Background(), testAdmin, "  ", true)

	assertAppError(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_SetAdminClaim_KeepsOtherClaims(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.identity.EXPECT().GetIdentity(ctx, "target-uid").Return(&service.Identity{
		UID:          "target-uid",
		CustomClaims: map[string]any{"region": "north", service.AdminClaim: false},
	}, nil)
	fx.identity.EXPECT().
		SetCustomClaims(ctx, "target-uid", map[string]any{"region": "north", service.AdminClaim: true}).
		Return(nil)

	output, err := fx.service.SetAdminClaim(ctx, testAdmin, " target-uid ", true)

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Contains(t, output.Message, "granted")
}

func TestAdminService_SetAdminClaim_Revoke(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.identity.EXPECT().GetIdentity(ctx, "target-uid").Return(&service.Identity{UID: "target-uid"}, nil)
	fx.identity.EXPECT().
		SetCustomClaims(ctx, "target-uid", map[string]any{service.AdminClaim: false}).
		Return(nil)

	output, err := fx.service.SetAdminClaim(ctx, testAdmin, "target-uid", false)

	require.NoError(t, err)
	assert.Contains(t, output.Message, "revoked")
}

func TestAdminService_SetAdminClaim_ProviderErrors(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(ctx context.Context, identity *mockService.MockIdentityProvider)
		want  *domainerrors.BaseError
	}{
		{
			name: "unknown user",
			setup: func(ctx context.Context, identity *mockService.MockIdentityProvider) {
				identity.EXPECT().GetIdentity(ctx, "target-uid").Return(nil, service.ErrIdentityNotFound)
			},
			want: domainerrors.ErrUserNotFound,
		},
		{
			name: "lookup failure",
			setup: func(ctx context.Context, identity *mockService.MockIdentityProvider) {
				identity.EXPECT().GetIdentity(ctx, "target-uid").Return(nil, errors.New("quota exceeded"))
			},
			want: domainerrors.ErrClaimUpdateFailed,
		},
		{
			name: "claim write failure",
			setup: func(ctx context.Context, identity *mockService.MockIdentityProvider) {
				identity.EXPECT().GetIdentity(ctx, "target-uid").Return(&service.Identity{UID: "target-uid"}, nil)
				identity.EXPECT().SetCustomClaims(ctx, "target-uid", mock.Anything).Return(errors.New("unavailable"))
			},
			want: domainerrors.ErrClaimUpdateFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestAdminService(t)
			ctx := context.Background()
			tc.setup(ctx, fx.identity)

			_, err := fx.service.SetAdminClaim(ctx, testAdmin, "target-uid", true)

			assertAppError(t, err, tc.want)
		})
	}
}

func TestAdminService_ProvisionAdmins(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.identity.EXPECT().GetIdentityByEmail(ctx, "ops@example.com").Return(&service.Identity{
		UID:   "ops-uid",
		Email: "ops@example.com",
	}, nil).Once()
	fx.identity.EXPECT().
		SetCustomClaims(ctx, "ops-uid", map[string]any{service.AdminClaim: true}).
		Return(nil).
		Once()
	fx.identity.EXPECT().GetIdentityByEmail(ctx, "missing@example.com").Return(nil, service.ErrIdentityNotFound).Once()

	results := fx.service.ProvisionAdmins(ctx, []string{" OPS@example.com", "", "missing@example.com", "ops@example.com"})

	require.Len(t, results, 2)
	assert.Equal(t, "ops@example.com", results[0].Email)
	assert.Equal(t, "ops-uid", results[0].UID)
	require.NoError(t, results[0].Err)

	assert.Equal(t, "missing@example.com", results[1].Email)
	assert.ErrorIs(t, results[1].Err, domainerrors.ErrUserNotFound)
}

func TestAdminService_ProvisionAdmins_RecordsOutcome(t *testing.T) {
	identity := mockService.NewMockIdentityProvider(t)
	recorder := mockService.NewMockOperationRecorder(t)
	admin := NewAdminService(AdminServiceParams{
		IdentityProvider: identity,
		Recorder:         recorder,
		Logger:           discardLogger(),
	})
	ctx := context.Background()

	identity.EXPECT().GetIdentityByEmail(ctx, "ops@example.com").Return(nil, errors.New("unavailable")).Once()
	recorder.EXPECT().
		Observe(opProvisionAdmins, mock.MatchedBy(func(err error) bool {
			return errors.Is(err, domainerrors.ErrClaimUpdateFailed)
		}), mock.Anything).
		Once()

	results := admin.ProvisionAdmins(ctx, []string{"ops@example.com"})

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}
