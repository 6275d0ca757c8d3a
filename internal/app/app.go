// Package app wires the client core together: secure store, backend client,
// device adapters and the screen-facing services. The UI shell constructs one
// App at startup and hands its services to the screens.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/service"
	"github.com/planora/planora-app/internal/infrastructure/backend"
	"github.com/planora/planora-app/internal/infrastructure/config"
	"github.com/planora/planora-app/internal/infrastructure/device"
	"github.com/planora/planora-app/internal/infrastructure/store/securefile"
)

// App holds the composed client services.
type App struct {
	Session       *service.Session
	Auth          *service.Auth
	Tabs          *service.TabResolver
	Launch        *service.Launch
	Listing       *service.Listing
	Profile       *service.Profile
	Notifications *service.Notifications
}

// New composes the client from configuration. The session doubles as the
// backend client's token source, so every authenticated request picks up the
// token cached at login.
func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, err := securefile.New(cfg.Store.Dir, cfg.Store.Secret)
	if err != nil {
		return nil, fmt.Errorf("app: open secure store: %w", err)
	}

	session := service.NewSession(store, log)
	client := backend.New(backend.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Tokens:  session,
		Logger:  log,
	})
	pushTokens := device.NewStaticTokenSource(cfg.Push.Token)

	return &App{
		Session:       session,
		Auth:          service.NewAuth(client, session, log),
		Tabs:          service.NewTabResolver(session, client, log),
		Launch:        service.NewLaunch(session, client, pushTokens, log),
		Listing:       service.NewListing(session, client, log),
		Profile:       service.NewProfile(session, client, client, log),
		Notifications: service.NewNotifications(client, log),
	}, nil
}
