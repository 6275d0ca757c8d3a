package handler

import (
	"strings"
	"sync"
	"time"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Fixtures is the stub's in-memory dataset. It mirrors just enough backend
// behavior for the app to be developed and integration-tested offline.
type Fixtures struct {
	mu            sync.RWMutex
	users         map[string]*domain.User // by id
	passwords     map[string]string       // email → password
	categories    []domain.Category
	notifications map[string][]domain.Notification
	pushTokens    map[string]string // user id → token
}

// NewFixtures returns an empty dataset.
func NewFixtures() *Fixtures {
	return &Fixtures{
		users:         map[string]*domain.User{},
		passwords:     map[string]string{},
		notifications: map[string][]domain.Notification{},
		pushTokens:    map[string]string{},
	}
}

// DefaultFixtures returns the seeded dataset used by the dev stub: the full
// category catalogue, a vendor per major category and one organizer.
func DefaultFixtures() *Fixtures {
	f := NewFixtures()
	f.categories = []domain.Category{
		{ID: "cat-1", Name: "Photography"},
		{ID: "cat-2", Name: "Caterings"},
		{ID: "cat-3", Name: "Venues"},
		{ID: "cat-4", Name: "Makeup"},
		{ID: "cat-5", Name: "Mehndi"},
		{ID: "cat-6", Name: "DJ & Sound"},
		{ID: "cat-7", Name: "Cakes"},
	}

	f.AddUser(&domain.User{
		ID:   "org-1",
		Role: domain.RoleOrganizer,
		Name: "Ayesha Khan", Email: "ayesha@example.com",
		PhoneNumber: "3001234567",
	}, "organizer-pass")

	f.AddUser(&domain.User{
		ID:   "ven-1",
		Role: domain.RoleVendor,
		Name: "Lens & Light Studio", Email: "studio@example.com",
		PhoneNumber:        "3017654321",
		BusinessCategoryID: "cat-1",
		ContactDetails:     &domain.ContactDetails{Address: "12 Mall Road", City: "Lahore"},
		CoverImage:         "https://cdn.example.com/ven-1.jpg",
		Pricing:            &domain.PricingDetails{MinimumPrice: "45000"},
		PhotographyDetails: &domain.BusinessDetails{
			Staff:        "MALE",
			RefundPolicy: "PARTIALLY REFUNDABLE",
			Description:  "Candid wedding photography",
			CityCovered:  "Lahore",
		},
	}, "vendor-pass")

	f.AddUser(&domain.User{
		ID:   "ven-2",
		Role: domain.RoleVendor,
		Name: "Shahi Dastarkhwan", Email: "catering@example.com",
		BusinessCategoryID: "cat-2",
		ContactDetails:     &domain.ContactDetails{Address: "7 Food Street", City: "Karachi"},
		Pricing:            &domain.PricingDetails{MinimumPrice: "1200"},
		CateringDetails: &domain.BusinessDetails{
			Staff:        "MALE",
			RefundPolicy: "NON-REFUNDABLE",
			Description:  "Traditional wedding catering",
			CityCovered:  "Karachi",
		},
	}, "vendor-pass")

	f.AddNotification("org-1", domain.Notification{
		ID: "ntf-1", Type: "Booking",
		Description: "Your booking with Lens & Light Studio is confirmed",
		CreatedAt:   time.Now().Add(-2 * time.Hour).UTC(),
	})
	return f
}

// AddUser registers a user with its login password.
func (f *Fixtures) AddUser(u *domain.User, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	f.passwords[u.Email] = password
}

// AddNotification appends a notification for the user.
func (f *Fixtures) AddNotification(userID string, n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications[userID] = append(f.notifications[userID], n)
}

// Authenticate matches email and password, returning the account record.
func (f *Fixtures) Authenticate(email, password string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	stored, ok := f.passwords[email]
	if !ok || stored != password {
		return nil, domain.ErrInvalidCredentials
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrInvalidCredentials
}

// VendorByID returns the vendor record, or domain.ErrVendorNotFound.
func (f *Fixtures) VendorByID(id string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok || !u.IsVendor() {
		return nil, domain.ErrVendorNotFound
	}
	copied := *u
	return &copied, nil
}

// SearchVendors matches vendors whose name contains the query,
// case-insensitively.
func (f *Fixtures) SearchVendors(query string) []domain.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	q := strings.ToLower(query)
	out := []domain.User{}
	for _, u := range f.users {
		if u.IsVendor() && strings.Contains(strings.ToLower(u.Name), q) {
			out = append(out, *u)
		}
	}
	return out
}

// SearchVendorsWithFilters applies each non-zero filter conjunctively.
// MinRating is accepted but not evaluated: fixtures carry no ratings.
func (f *Fixtures) SearchVendorsWithFilters(filters ports.VendorFilters) []domain.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := []domain.User{}
	for _, u := range f.users {
		if !u.IsVendor() {
			continue
		}
		if filters.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filters.Name)) {
			continue
		}
		if filters.CategoryID != "" && u.BusinessCategoryID != filters.CategoryID {
			continue
		}
		if filters.City != "" && !strings.EqualFold(u.City(), filters.City) {
			continue
		}
		if filters.Staff != "" && !matchesDetails(u, func(d *domain.BusinessDetails) bool {
			return strings.EqualFold(d.Staff, filters.Staff)
		}) {
			continue
		}
		if filters.CancellationPolicy != "" && !matchesDetails(u, func(d *domain.BusinessDetails) bool {
			return strings.EqualFold(d.RefundPolicy, filters.CancellationPolicy)
		}) {
			continue
		}
		out = append(out, *u)
	}
	return out
}

func matchesDetails(u *domain.User, match func(*domain.BusinessDetails) bool) bool {
	for _, d := range []*domain.BusinessDetails{
		u.VenueDetails, u.CateringDetails, u.PhotographyDetails, u.SalonDetails,
	} {
		if d != nil && match(d) {
			return true
		}
	}
	return false
}

// Categories returns the catalogue.
func (f *Fixtures) Categories() []domain.Category {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]domain.Category{}, f.categories...)
}

// UpdateProfile patches the stored record and returns the updated copy.
func (f *Fixtures) UpdateProfile(userID string, update ports.ProfileUpdate) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrVendorNotFound
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Email != "" {
		u.Email = update.Email
	}
	if update.PhoneNumber != "" {
		u.PhoneNumber = update.PhoneNumber
	}
	if update.Address != "" {
		u.Address = update.Address
		if u.ContactDetails == nil {
			u.ContactDetails = &domain.ContactDetails{}
		}
		u.ContactDetails.Address = update.Address
	}
	copied := *u
	return &copied, nil
}

// SetPushToken records the device token for the user.
func (f *Fixtures) SetPushToken(userID, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushTokens[userID] = token
}

// PushToken returns the recorded token for the user.
func (f *Fixtures) PushToken(userID string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pushTokens[userID]
}

// NotificationsFor returns the user's notifications, oldest first.
func (f *Fixtures) NotificationsFor(userID string) []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]domain.Notification{}, f.notifications[userID]...)
}
