package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// ListingFilters are the screen-level filter inputs. Staff and
// CancellationPolicy are normalised to upper case before hitting the
// backend; MinRating is stringified, never range-checked client-side.
type ListingFilters struct {
	City               string
	Staff              string
	CancellationPolicy string
	MinRating          int
}

// Listing drives the category-vendor-listing screen: remembering the tapped
// category, fetching vendors for it, and searching.
//
// Fetch carries a request-generation token: when several fetches are in
// flight (fast typing in the search box), only the response matching the
// most recently issued token is applied, so a slow early response can no
// longer overwrite fresher results.
type Listing struct {
	session *Session
	vendors ports.VendorAPI
	log     zerolog.Logger

	mu     sync.Mutex
	latest uuid.UUID
}

func NewListing(session *Session, vendors ports.VendorAPI, log zerolog.Logger) *Listing {
	return &Listing{session: session, vendors: vendors, log: log}
}

// SelectCategory persists the tapped category and opens the listing screen.
// Store and navigation failures propagate to the caller.
func (l *Listing) SelectCategory(ctx context.Context, c domain.Category, nav ports.Navigator) error {
	if err := l.session.SelectCategory(ctx, c); err != nil {
		return err
	}
	return nav.Push(domain.RouteCategoryVendorListing)
}

// Header returns the listing screen title: the remembered category name.
func (l *Listing) Header(ctx context.Context) string {
	return l.session.SelectedCategory(ctx).Name
}

// Fetch loads vendors for the remembered category, applying the search query
// and filters. The second return value reports whether the result is current:
// false means a newer fetch was issued while this one was in flight and the
// result must be discarded. Backend failures degrade to an empty, current
// result.
func (l *Listing) Fetch(ctx context.Context, query string, filters ListingFilters) ([]domain.User, bool) {
	token := uuid.New()
	l.mu.Lock()
	l.latest = token
	l.mu.Unlock()

	f := ports.VendorFilters{
		Name:               query,
		CategoryID:         l.session.SelectedCategory(ctx).ID,
		City:               filters.City,
		MinRating:          filters.MinRating,
		Staff:              strings.ToUpper(filters.Staff),
		CancellationPolicy: strings.ToUpper(filters.CancellationPolicy),
	}

	vendors, err := l.vendors.SearchVendorsWithFilters(ctx, f)
	if err != nil {
		l.log.Error().Err(err).Str("category_id", f.CategoryID).Msg("vendor search failed")
		vendors = nil
	}

	l.mu.Lock()
	current := l.latest == token
	l.mu.Unlock()
	if !current {
		l.log.Debug().Str("token", token.String()).Msg("stale vendor search response discarded")
		return nil, false
	}
	return vendors, true
}

// Search runs the plain vendor search. Failures degrade to an empty slice.
func (l *Listing) Search(ctx context.Context, query string) []domain.User {
	vendors, err := l.vendors.SearchVendors(ctx, query)
	if err != nil {
		l.log.Error().Err(err).Msg("error searching vendors")
		return nil
	}
	return vendors
}
