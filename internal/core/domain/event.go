package domain

import "time"

// Field names used as keys in FieldErrors.
const (
	FieldEventName  = "eventName"
	FieldEventType  = "eventType"
	FieldEventDate  = "eventDate"
	FieldGuestCount = "guestCount"
	FieldServices   = "services"
)

// EventDraft is the in-memory form state for event creation. It lives only
// for the lifetime of the event-details screen and is never persisted unless
// explicitly saved after validation passes.
//
// GuestCount is deliberately a raw string: it is validated for presence
// only, never parsed as a number.
type EventDraft struct {
	EventName        string
	EventType        string
	EventDate        *time.Time
	GuestCount       string
	SelectedServices map[string]struct{}
}

// NewEventDraft returns a draft with empty defaults and an initialised
// service selection set.
func NewEventDraft() EventDraft {
	return EventDraft{SelectedServices: map[string]struct{}{}}
}

// FieldErrors maps a field name to a human-readable validation message.
// An empty map means the draft is valid.
type FieldErrors map[string]string

// Has reports whether field carries a validation error.
func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}
