package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

var draftValidator = validator.New()

// draftSchema mirrors domain.EventDraft for go-playground validation.
// String fields are pre-trimmed by ValidateDraft; GuestCount is checked for
// presence only and is never parsed as a number.
type draftSchema struct {
	EventName  string              `validate:"required"`
	EventType  string              `validate:"required"`
	EventDate  *time.Time          `validate:"required"`
	GuestCount string              `validate:"required"`
	Services   map[string]struct{} `validate:"required,min=1"`
}

// draftFields maps schema struct fields to the field names surfaced on the
// screen and the exact message shown under each input.
var draftFields = map[string]struct {
	name    string
	message string
}{
	"EventName":  {domain.FieldEventName, "Event name is required"},
	"EventType":  {domain.FieldEventType, "Event type is required"},
	"EventDate":  {domain.FieldEventDate, "Event date is required"},
	"GuestCount": {domain.FieldGuestCount, "Guest count is required"},
	"Services":   {domain.FieldServices, "Select at least one service"},
}

// ValidateDraft checks the full draft and returns the per-field error map
// plus whether submission may proceed. It is a pure function: the caller
// decides when errors become visible.
func ValidateDraft(d domain.EventDraft) (domain.FieldErrors, bool) {
	schema := draftSchema{
		EventName:  strings.TrimSpace(d.EventName),
		EventType:  strings.TrimSpace(d.EventType),
		EventDate:  d.EventDate,
		GuestCount: d.GuestCount,
		Services:   d.SelectedServices,
	}

	errs := domain.FieldErrors{}
	if err := draftValidator.Struct(schema); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				if f, ok := draftFields[fe.StructField()]; ok {
					errs[f.name] = f.message
				}
			}
		}
	}
	return errs, len(errs) == 0
}

// EventForm holds the event-details screen state: the draft, its setters,
// and the two submission actions. Validation errors stay hidden until the
// first submit attempt and are recomputed in full on every attempt.
type EventForm struct {
	nav   ports.Navigator
	log   zerolog.Logger
	draft domain.EventDraft

	submitted bool
	errs      domain.FieldErrors
}

func NewEventForm(nav ports.Navigator, log zerolog.Logger) *EventForm {
	return &EventForm{nav: nav, log: log, draft: domain.NewEventDraft()}
}

func (f *EventForm) SetEventName(name string) { f.draft.EventName = name }

func (f *EventForm) SetEventType(eventType string) { f.draft.EventType = eventType }

func (f *EventForm) SetEventDate(date time.Time) { f.draft.EventDate = &date }

// SetGuestCount stores the raw input verbatim; "123abc" is retained as-is.
func (f *EventForm) SetGuestCount(count string) { f.draft.GuestCount = count }

// ToggleService adds the service to the selection, or removes it when
// already selected. Toggling twice restores the prior selection.
func (f *EventForm) ToggleService(id string) {
	if _, ok := f.draft.SelectedServices[id]; ok {
		delete(f.draft.SelectedServices, id)
		return
	}
	f.draft.SelectedServices[id] = struct{}{}
}

// Draft returns a copy of the current draft.
func (f *EventForm) Draft() domain.EventDraft {
	d := f.draft
	d.SelectedServices = make(map[string]struct{}, len(f.draft.SelectedServices))
	for id := range f.draft.SelectedServices {
		d.SelectedServices[id] = struct{}{}
	}
	return d
}

// Errors returns the error map to render. It is empty until the first
// submit attempt.
func (f *EventForm) Errors() domain.FieldErrors {
	if !f.submitted {
		return domain.FieldErrors{}
	}
	return f.errs
}

// SubmitAISuggestedPlan validates the draft and, when valid, navigates to
// the AI-suggested plan screen. A failed navigation push propagates to the
// caller.
func (f *EventForm) SubmitAISuggestedPlan() error {
	return f.submit(domain.RouteAISuggestedPlan)
}

// SubmitCustomizeYourOwn validates the draft and, when valid, navigates to
// the customize-your-own screen. Gating is identical to the AI path.
func (f *EventForm) SubmitCustomizeYourOwn() error {
	return f.submit(domain.RouteCustomizePlan)
}

func (f *EventForm) submit(route string) error {
	f.submitted = true

	errs, ok := ValidateDraft(f.draft)
	f.errs = errs
	if !ok {
		f.log.Debug().Int("fields", len(errs)).Msg("event draft invalid, submission blocked")
		return nil
	}
	return f.nav.Push(route)
}
