// Package persistence selects the inventory store backend.
package persistence

import (
	"log/slog"

	"inventory/config"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/repository"
	"inventory/internal/infra/firebase"
	"inventory/internal/infra/persistence/firestore"
	"inventory/internal/infra/persistence/memory"
	"inventory/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.Clients
}

// NewTransactionManager returns the TransactionManager selected by store.provider.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	cfg := params.Config.Store
	logger := params.Logger.With(slog.String("store", cfg.Provider))

	switch cfg.Provider {
	case constants.StoreProviderFirestore:
		client, err := params.Firebase.Firestore()
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firestore inventory store", slog.Int("max_writes_per_commit", cfg.MaxWritesPerCommit))

		return firestore.NewTransactionManager(client, cfg.MaxWritesPerCommit, logger), nil

	case constants.StoreProviderPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL inventory store")

		return postgres.NewTransactionManager(db, cfg.MaxWritesPerCommit), nil

	case constants.StoreProviderMemory:
		logger.Warn("Using in-memory inventory store; data is lost on restart")

		return memory.New(cfg.MaxWritesPerCommit), nil

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}

// Module provides the inventory TransactionManager.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTransactionManager),
)
