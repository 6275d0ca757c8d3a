package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Launch is the welcome-screen redirect flow: it inspects the cached session
// and forwards the user to the right entry screen, registering the device
// push token along the way.
type Launch struct {
	session *Session
	push    ports.PushAPI
	tokens  ports.PushTokenSource
	log     zerolog.Logger
}

func NewLaunch(session *Session, push ports.PushAPI, tokens ports.PushTokenSource, log zerolog.Logger) *Launch {
	return &Launch{session: session, push: push, tokens: tokens, log: log}
}

// Redirect picks the entry screen for the current session:
//
//	no cached user      → intro
//	corrupt cached user → login
//	Vendor              → vendor dashboard
//	Organizer           → dashboard
//	anything else       → splash screen
//
// Unlike the bottom navigation, this flow swallows navigation failures: a
// failed push is logged and the app stays on the welcome screen.
func (l *Launch) Redirect(ctx context.Context, nav ports.Navigator) {
	user, err := l.session.User(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			l.pushRoute(nav, domain.RouteIntro)
			return
		}
		l.log.Error().Err(err).Msg("error parsing cached user data")
		l.pushRoute(nav, domain.RouteLogin)
		return
	}

	l.registerPushToken(ctx, user)

	switch user.Role {
	case domain.RoleVendor:
		l.pushRoute(nav, domain.RouteVendorDashboard)
	case domain.RoleOrganizer:
		l.pushRoute(nav, domain.RouteDashboard)
	default:
		// fallback for unknown role
		l.pushRoute(nav, domain.RouteSplashScreen)
	}
}

// registerPushToken is fire-and-forget: the redirect proceeds whether or not
// the token could be obtained or delivered.
func (l *Launch) registerPushToken(ctx context.Context, user *domain.User) {
	token, err := l.tokens.PushToken(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrPushUnavailable) {
			l.log.Warn().Err(err).Msg("could not obtain push token")
		}
		return
	}
	if err := l.push.RegisterPushToken(ctx, user.ID, token); err != nil {
		l.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to post push token")
	}
}

func (l *Launch) pushRoute(nav ports.Navigator, route string) {
	if err := nav.Push(route); err != nil {
		l.log.Error().Err(err).Str("route", route).Msg("launch navigation failed")
	}
}
