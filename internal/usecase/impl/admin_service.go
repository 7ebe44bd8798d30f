package impl

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"
	"inventory/internal/errors"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

type adminService struct {
	identityProvider service.IdentityProvider
	recorder         service.OperationRecorder
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	IdentityProvider service.IdentityProvider
	Recorder         service.OperationRecorder
	Logger           *slog.Logger
}

// NewAdminService creates the admin claim manager.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		identityProvider: params.IdentityProvider,
		recorder:         params.Recorder,
		logger:           params.Logger,
	}
}

func (s *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SetAdminClaim grants or revokes the admin claim of targetUID, keeping its other claims.
func (s *adminService) SetAdminClaim(ctx context.Context, caller *entity.Caller, targetUID string, isAdmin bool) (_ *usecase.SetAdminClaimOutput, err error) {
	if s.recorder != nil {
		defer func(start time.Time) { s.recorder.Observe(opSetAdminClaim, err, time.Since(start)) }(time.Now())
	}

	if caller == nil || caller.UID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !caller.IsAdmin {
		return nil, domainerrors.ErrPermissionDenied
	}

	targetUID = strings.TrimSpace(targetUID)
	if targetUID == "" {
		return nil, domainerrors.NewValidation("target user id is required")
	}

	if err := s.grant(ctx, targetUID, isAdmin); err != nil {
		s.log(ctx).Error("failed to update admin claim",
			slog.String("caller", caller.UID),
			slog.String("target", targetUID),
			slog.Any("error", err),
		)

		return nil, err
	}

	verb := "revoked"
	if isAdmin {
		verb = "granted"
	}
	s.log(ctx).Info("admin claim updated",
		slog.String("caller", caller.UID),
		slog.String("target", targetUID),
		slog.Bool("is_admin", isAdmin),
	)

	return &usecase.SetAdminClaimOutput{
		Success: true,
		Message: fmt.Sprintf("admin rights %s for %s; the change takes effect after the user's token is refreshed", verb, targetUID),
	}, nil
}

// ProvisionAdmins grants the admin claim to each email, continuing past failures.
func (s *adminService) ProvisionAdmins(ctx context.Context, emails []string) []usecase.ProvisionResult {
	seen := make(map[string]struct{}, len(emails))
	results := make([]usecase.ProvisionResult, 0, len(emails))

	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}

		result := usecase.ProvisionResult{Email: email}

		identity, err := s.identityProvider.GetIdentityByEmail(ctx, email)
		switch {
		case errors.Is(err, service.ErrIdentityNotFound):
			result.Err = domainerrors.ErrUserNotFound.WithMessagef("no account for %s", email)
		case err != nil:
			result.Err = domainerrors.ErrClaimUpdateFailed.WithCause(err)
		default:
			result.UID = identity.UID
			result.Err = s.setClaim(ctx, identity, true)
		}

		if result.Err != nil {
			s.log(ctx).Warn("admin provisioning failed", slog.String("email", email), slog.Any("error", result.Err))
		} else {
			s.log(ctx).Info("admin provisioned", slog.String("email", email), slog.String("uid", result.UID))
		}
		if s.recorder != nil {
			s.recorder.Observe(opProvisionAdmins, result.Err, 0)
		}

		results = append(results, result)
	}

	return results
}

func (s *adminService) grant(ctx context.Context, uid string, isAdmin bool) error {
	identity, err := s.identityProvider.GetIdentity(ctx, uid)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return domainerrors.ErrUserNotFound.WithMessagef("user %s not found", uid)
		}

		return domainerrors.ErrClaimUpdateFailed.WithCause(err)
	}

	return s.setClaim(ctx, identity, isAdmin)
}

func (s *adminService) setClaim(ctx context.Context, identity *service.Identity, isAdmin bool) error {
	claims := make(map[string]any, len(identity.CustomClaims)+1)
	maps.Copy(claims, identity.CustomClaims)
	claims[service.AdminClaim] = isAdmin

	if err := s.identityProvider.SetCustomClaims(ctx, identity.UID, claims); err != nil {
		return domainerrors.ErrClaimUpdateFailed.WithCause(err)
	}

	return nil
}
