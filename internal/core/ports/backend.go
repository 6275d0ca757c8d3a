package ports

import (
	"context"

	"github.com/planora/planora-app/internal/core/domain"
)

// VendorFilters carries the vendor-search query parameters. Zero values are
// omitted from the request.
type VendorFilters struct {
	Name               string
	CategoryID         string
	City               string
	MinRating          int
	Staff              string
	CancellationPolicy string
}

// ProfileUpdate is the partial record sent to the update-profile endpoint.
type ProfileUpdate struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
}

// VendorAPI covers vendor lookup and search.
type VendorAPI interface {
	VendorByID(ctx context.Context, id string) (*domain.User, error)
	SearchVendors(ctx context.Context, query string) ([]domain.User, error)
	SearchVendorsWithFilters(ctx context.Context, filters VendorFilters) ([]domain.User, error)
}

// CategoryAPI fetches the vendor category catalogue.
type CategoryAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// ProfileAPI patches the caller's profile and returns the updated record.
type ProfileAPI interface {
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
}

// PushAPI registers the device push token against a user.
type PushAPI interface {
	RegisterPushToken(ctx context.Context, userID, token string) error
}

// NotificationAPI fetches a user's notifications.
type NotificationAPI interface {
	Notifications(ctx context.Context, userID string) ([]domain.Notification, error)
}

// AuthAPI authenticates a user and returns a bearer token plus the account
// record to cache.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenSource yields the current session bearer token, or an empty string
// when the user is not logged in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// PushTokenSource yields the device push token. Returns
// domain.ErrPushUnavailable when the device cannot receive pushes (emulator,
// permission denied).
type PushTokenSource interface {
	PushToken(ctx context.Context) (string, error)
}
