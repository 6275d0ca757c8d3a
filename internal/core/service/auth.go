package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Auth performs login and seeds the session cache.
type Auth struct {
	api     ports.AuthAPI
	session *Session
	log     zerolog.Logger
}

func NewAuth(api ports.AuthAPI, session *Session, log zerolog.Logger) *Auth {
	return &Auth{api: api, session: session, log: log}
}

// Login authenticates against the backend and caches both the bearer token
// and the returned user record. Nothing is cached when authentication fails.
func (a *Auth) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	token, user, err := a.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if err := a.session.SetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("cache token: %w", err)
	}
	if err := a.session.SetUser(ctx, user); err != nil {
		return nil, fmt.Errorf("cache user: %w", err)
	}
	a.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("logged in")
	return user, nil
}

// Logout clears the cached session.
func (a *Auth) Logout(ctx context.Context) error {
	return a.session.ClearUser(ctx)
}
