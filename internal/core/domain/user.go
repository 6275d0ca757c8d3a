package domain

import "errors"

const (
	RoleOrganizer = "Organizer"
	RoleVendor    = "Vendor"
)

var ErrNoSession = errors.New("no session user cached")
var ErrSessionCorrupt = errors.New("cached session user is corrupt")
var ErrKeyNotFound = errors.New("key not found")
var ErrVendorNotFound = errors.New("vendor not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPushUnavailable = errors.New("push token unavailable")

// ContactDetails is the nested contact block the backend attaches to vendor
// records.
type ContactDetails struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
}

// PricingDetails carries the listing-card price summary.
type PricingDetails struct {
	MinimumPrice string `json:"minimumPrice,omitempty"`
}

// User is the authenticated account record. The same shape serves both the
// cached session user and the vendor records returned by search and profile
// endpoints; vendor-only blocks are nil for organizers. JSON tags follow the
// backend wire names.
type User struct {
	ID                 string          `json:"_id"`
	Role               string          `json:"role"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	PhoneNumber        string          `json:"phoneNumber,omitempty"`
	Address            string          `json:"address,omitempty"`
	BusinessCategoryID string          `json:"businessCategoryId,omitempty"`
	ContactDetails     *ContactDetails `json:"contactDetails,omitempty"`
	CoverImage         string          `json:"coverImage,omitempty"`
	Pricing            *PricingDetails `json:"BusinessDetails,omitempty"`

	// Per-kind business detail blocks. At most one is set, matching the
	// vendor's business category.
	VenueDetails       *BusinessDetails `json:"venueBusinessDetails,omitempty"`
	CateringDetails    *BusinessDetails `json:"cateringBusinessDetails,omitempty"`
	PhotographyDetails *BusinessDetails `json:"photographerBusinessDetails,omitempty"`
	SalonDetails       *BusinessDetails `json:"salonBusinessDetails,omitempty"`
}

// IsVendor reports whether the record belongs to a vendor account.
func (u *User) IsVendor() bool {
	return u.Role == RoleVendor
}

// City returns the vendor's city, or an empty string when no contact block
// is present.
func (u *User) City() string {
	if u.ContactDetails == nil {
		return ""
	}
	return u.ContactDetails.City
}
