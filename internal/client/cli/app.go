package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/client/config"
	"github.com/dmitrijs2005/ecotracker/internal/client/services"
)

// App bundles the services one CLI invocation works with.
type App struct {
	auth     services.AuthService
	tracker  services.TrackerService
	username string
	loggedIn bool
	closeFn  func() error
}

// Opener builds the App for a command; tests substitute fakes.
type Opener func(ctx context.Context, cfg *config.Config) (*App, error)

// NewApp opens the session database, connects the API client and restores a
// cached login if there is one.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabaseFile)
	if err != nil {
		return nil, err
	}

	api, err := client.NewGRPCClient(cfg.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		auth:    services.NewAuthService(api, db),
		tracker: services.NewTrackerService(api),
		closeFn: func() error { return errors.Join(api.Close(), db.Close()) },
	}

	a.username, err = a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.loggedIn = true
	case !errors.Is(err, services.ErrNotLoggedIn):
		_ = a.Close()
		return nil, err
	}

	return a, nil
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}
