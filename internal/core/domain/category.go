package domain

// Category is a vendor category as returned by the backend.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// BusinessKind identifies which typed business detail block applies to a
// vendor. It replaces the old string-concatenated field lookup with an
// explicit tagged variant.
type BusinessKind string

const (
	KindVenue       BusinessKind = "venue"
	KindCatering    BusinessKind = "catering"
	KindPhotography BusinessKind = "photography"
	KindSalon       BusinessKind = "salon"
	KindMehndi      BusinessKind = "mehndi"
	KindDJSound     BusinessKind = "dj_sound"
	KindCakes       BusinessKind = "cakes"
	KindUnknown     BusinessKind = "unknown"
)

// kindByCategoryName maps the backend's display category names to kinds.
var kindByCategoryName = map[string]BusinessKind{
	"Venues":      KindVenue,
	"Caterings":   KindCatering,
	"Photography": KindPhotography,
	"Makeup":      KindSalon,
	"Mehndi":      KindMehndi,
	"DJ & Sound":  KindDJSound,
	"Cakes":       KindCakes,
}

// KindForCategoryName resolves a category display name to its BusinessKind.
// Unrecognised names resolve to KindUnknown.
func KindForCategoryName(name string) BusinessKind {
	if k, ok := kindByCategoryName[name]; ok {
		return k
	}
	return KindUnknown
}

// BusinessDetails is the detail block a vendor fills in for its category.
type BusinessDetails struct {
	Staff        string `json:"staff,omitempty"`
	RefundPolicy string `json:"refundPolicy,omitempty"`
	Description  string `json:"description,omitempty"`
	CityCovered  string `json:"cityCovered,omitempty"`
}

// DetailsFor returns the detail block matching kind, or nil when the vendor
// has none for that kind. Mehndi, DJ & Sound and Cakes vendors have no
// dedicated block yet.
func (u *User) DetailsFor(kind BusinessKind) *BusinessDetails {
	switch kind {
	case KindVenue:
		return u.VenueDetails
	case KindCatering:
		return u.CateringDetails
	case KindPhotography:
		return u.PhotographyDetails
	case KindSalon:
		return u.SalonDetails
	default:
		return nil
	}
}
