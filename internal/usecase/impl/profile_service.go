package impl

import (
	"context"
	"log/slog"

	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	"inventory/internal/domain/repository"
	"inventory/internal/usecase"

	"go.uber.org/fx"
)

type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// GetProfile mirrors the token's name and email into users/{uid}. IsAdmin always
// reflects the token claim, never a stored value.
func (s *profileService) GetProfile(ctx context.Context, caller *entity.Caller) (*entity.UserProfile, error) {
	if err := requireActor(caller); err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		ID:    caller.UID,
		Name:  caller.Name,
		Email: caller.Email,
	}

	err := s.txManager.Execute(ctx, func(txRepo repository.RepositoryFactory) error {
		return txRepo.NewUserRepository().Upsert(ctx, profile)
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Error("failed to upsert profile",
			slog.String("uid", caller.UID),
			slog.Any("error", err),
		)

		return nil, writeFailure(err)
	}

	profile.IsAdmin = caller.IsAdmin
	if profile.SearchList == nil {
		profile.SearchList = []string{}
	}

	return profile, nil
}
