package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Tab is a single destination on the shared bottom navigation control.
type Tab struct {
	Label string
	Route string
	Icon  string
}

// TabSet is one of the two fixed destination sets.
type TabSet struct {
	Role string
	Tabs []Tab
}

func vendorTabs() *TabSet {
	return &TabSet{
		Role: domain.RoleVendor,
		Tabs: []Tab{
			{Label: "My Events", Route: domain.RouteVendorMyEvents, Icon: "myevent"},
			{Label: "Messages", Route: domain.RouteVendorMessages, Icon: "messages"},
			{Label: "Home", Route: domain.RouteVendorDashboard, Icon: "home"},
			{Label: "My Orders", Route: domain.RouteVendorOrderSummary, Icon: "orders"},
			{Label: "Account", Route: domain.RouteVendorAccount, Icon: "account"},
		},
	}
}

func organizerTabs(role string) *TabSet {
	return &TabSet{
		Role: role,
		Tabs: []Tab{
			{Label: "My Events", Route: domain.RouteMyEvents, Icon: "myevent"},
			{Label: "Messages", Route: domain.RouteVendorMessages, Icon: "messages"},
			{Label: "Home", Route: domain.RouteDashboard, Icon: "home"},
			{Label: "Notifications", Route: domain.RouteNotifications, Icon: "notifications"},
			{Label: "Account", Route: domain.RouteAccount, Icon: "account"},
		},
	}
}

// TabResolver decides which destination set the bottom navigation renders,
// based on the cached session user's role. The resolver never re-reads the
// role on its own; the control calls Resolve again when remounted.
type TabResolver struct {
	session *Session
	vendors ports.VendorAPI
	log     zerolog.Logger
}

func NewTabResolver(session *Session, vendors ports.VendorAPI, log zerolog.Logger) *TabResolver {
	return &TabResolver{session: session, vendors: vendors, log: log}
}

// Resolve returns the destination set for the current session, or nil when
// no set should be rendered (no cached user, or the cached record does not
// parse). All failures are absorbed here; Resolve never surfaces an error
// to the host screen.
//
// For vendors the cached record is refreshed from the backend so later
// screens see current vendor fields. A failed refresh keeps the stale
// record: the control renders from what it has rather than blocking.
func (r *TabResolver) Resolve(ctx context.Context) *TabSet {
	user, err := r.session.User(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			r.log.Warn().Msg("no user found in secure storage")
		} else {
			r.log.Error().Err(err).Msg("failed to load session user")
		}
		return nil
	}

	if !user.IsVendor() {
		return organizerTabs(user.Role)
	}

	fresh, err := r.vendors.VendorByID(ctx, user.ID)
	if err != nil {
		r.log.Error().Err(err).Str("vendor_id", user.ID).Msg("vendor refresh failed, using cached record")
		return vendorTabs()
	}
	if err := r.session.SetUser(ctx, fresh); err != nil {
		r.log.Error().Err(err).Msg("failed to re-save refreshed vendor")
	}
	return vendorTabs()
}

// Navigate pushes the tab's route. Push failures propagate to the caller;
// the control does not handle them.
func (r *TabResolver) Navigate(nav ports.Navigator, tab Tab) error {
	return nav.Push(tab.Route)
}
