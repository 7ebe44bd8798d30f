// Package firebase initializes the Firebase app and the clients derived from it.
// Clients are created on first use, so deployments that use the postgres store
// with local identity never dial Firebase.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"inventory/config"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the parameters required for the Firebase clients
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Clients lazily builds the Firebase app, Auth and Firestore clients.
type Clients struct {
	ctx    context.Context
	cfg    *config.FirebaseConfig
	logger *slog.Logger
	lc     fx.Lifecycle

	appOnce sync.Once
	app     *fb.App
	appErr  error

	authOnce sync.Once
	auth     *auth.Client
	authErr  error

	storeOnce sync.Once
	store     *firestore.Client
	storeErr  error
}

// New creates the lazy client holder.
func New(params Params) *Clients {
	return NewClients(params.Ctx, params.Config.Firebase, params.Logger, params.Lifecycle)
}

// NewClients is New without Fx. lc may be nil, in which case the caller closes clients.
func NewClients(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger, lc fx.Lifecycle) *Clients {
	return &Clients{ctx: ctx, cfg: cfg, logger: logger, lc: lc}
}

// App returns the Firebase app. Without a credentials path the application
// default credentials are used.
func (c *Clients) App() (*fb.App, error) {
	c.appOnce.Do(func() {
		if c.cfg == nil {
			c.appErr = errors.New("firebase config is required")

			return
		}

		var appConfig *fb.Config
		if c.cfg.ProjectID != "" {
			appConfig = &fb.Config{ProjectID: c.cfg.ProjectID}
		}

		var opts []option.ClientOption
		if c.cfg.CredentialsPath != "" {
			opts = append(opts, option.WithCredentialsFile(c.cfg.CredentialsPath))
		}

		c.app, c.appErr = fb.NewApp(c.ctx, appConfig, opts...)
		if c.appErr != nil {
			c.appErr = errors.Wrap(c.appErr, "failed to initialize Firebase app")

			return
		}
		c.logger.Info("Firebase app initialized", slog.String("project_id", c.cfg.ProjectID))
	})

	return c.app, c.appErr
}

// Auth returns the Firebase Auth client.
func (c *Clients) Auth() (*auth.Client, error) {
	c.authOnce.Do(func() {
		app, err := c.App()
		if err != nil {
			c.authErr = err

			return
		}

		c.auth, c.authErr = app.Auth(c.ctx)
		if c.authErr != nil {
			c.authErr = errors.Wrap(c.authErr, "failed to get auth client")
		}
	})

	return c.auth, c.authErr
}

// Firestore returns the Firestore client. It is closed on Fx shutdown.
func (c *Clients) Firestore() (*firestore.Client, error) {
	c.storeOnce.Do(func() {
		app, err := c.App()
		if err != nil {
			c.storeErr = err

			return
		}

		c.store, c.storeErr = app.Firestore(c.ctx)
		if c.storeErr != nil {
			c.storeErr = errors.Wrap(c.storeErr, "failed to get firestore client")

			return
		}

		if c.lc != nil {
			client := c.store
			c.lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					c.logger.Info("Closing Firestore client")

					return errors.WithStack(client.Close())
				},
			})
		}
	})

	return c.store, c.storeErr
}

// Module provides the lazy Firebase client holder.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
