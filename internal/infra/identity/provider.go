package identity

import (
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/service"
	"inventory/internal/infra/firebase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the identity provider, injected by Fx
type Params struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.Clients
}

// NewProvider returns the IdentityProvider selected by identity.provider.
func NewProvider(params Params) (service.IdentityProvider, error) {
	cfg := params.Config.Identity

	switch cfg.Provider {
	case constants.IdentityProviderFirebase:
		client, err := params.Firebase.Auth()
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using Firebase Auth identity provider")

		return NewFirebaseProvider(client), nil

	case constants.IdentityProviderLocal:
		params.Logger.Warn("Using local identity provider; tokens are signed with a shared secret")

		return NewLocalProvider(cfg.LocalSecret, cfg.LocalTokenTTL)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
