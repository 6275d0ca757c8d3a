package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
)

func validForm(nav *spyNavigator) *EventForm {
	f := NewEventForm(nav, zerolog.Nop())
	f.SetEventName("My Birthday")
	f.SetEventType("Conference")
	f.SetEventDate(time.Now())
	f.SetGuestCount("200")
	f.ToggleService("Photography")
	return f
}

func TestValidateDraft_EmptyDraft_AllFieldsFlagged(t *testing.T) {
	errs, ok := ValidateDraft(domain.NewEventDraft())
	if ok {
		t.Fatal("expected empty draft to be invalid")
	}

	want := map[string]string{
		domain.FieldEventName:  "Event name is required",
		domain.FieldEventType:  "Event type is required",
		domain.FieldEventDate:  "Event date is required",
		domain.FieldGuestCount: "Guest count is required",
		domain.FieldServices:   "Select at least one service",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
	if len(errs) != len(want) {
		t.Errorf("expected exactly %d errors, got %d: %v", len(want), len(errs), errs)
	}
}

func TestValidateDraft_WhitespaceOnlyNameAndType_Flagged(t *testing.T) {
	d := domain.NewEventDraft()
	d.EventName = "   "
	d.EventType = "\t"

	errs, ok := ValidateDraft(d)
	if ok {
		t.Fatal("expected whitespace-only fields to be invalid")
	}
	if !errs.Has(domain.FieldEventName) || !errs.Has(domain.FieldEventType) {
		t.Errorf("expected name and type errors, got: %v", errs)
	}
}

func TestValidateDraft_NonNumericGuestCountAccepted(t *testing.T) {
	now := time.Now()
	d := domain.EventDraft{
		EventName:        "Mehndi Night",
		EventType:        "Wedding",
		EventDate:        &now,
		GuestCount:       "123abc",
		SelectedServices: map[string]struct{}{"Catering": {}},
	}

	errs, ok := ValidateDraft(d)
	if !ok {
		t.Fatalf("expected draft with non-numeric guest count to be valid, got: %v", errs)
	}
}

func TestValidateDraft_VeryLongNameAccepted(t *testing.T) {
	now := time.Now()
	d := domain.EventDraft{
		EventName:        strings.Repeat("a", 1001),
		EventType:        "Conference",
		EventDate:        &now,
		GuestCount:       "50",
		SelectedServices: map[string]struct{}{"Venues": {}},
	}

	if _, ok := ValidateDraft(d); !ok {
		t.Fatal("expected 1001-char event name to pass validation")
	}
}

func TestEventForm_NoErrorsBeforeFirstSubmit(t *testing.T) {
	f := NewEventForm(&spyNavigator{}, zerolog.Nop())

	if len(f.Errors()) != 0 {
		t.Errorf("expected no errors before first submit, got: %v", f.Errors())
	}
}

func TestEventForm_InvalidSubmit_NoNavigation(t *testing.T) {
	nav := &spyNavigator{}
	f := NewEventForm(nav, zerolog.Nop())

	if err := f.SubmitAISuggestedPlan(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nav.pushed) != 0 {
		t.Errorf("expected no navigation on invalid submit, got: %v", nav.pushed)
	}
	if !f.Errors().Has(domain.FieldEventName) {
		t.Error("expected event name error after submit")
	}
}

func TestEventForm_CustomizePath_SameGating(t *testing.T) {
	nav := &spyNavigator{}
	f := NewEventForm(nav, zerolog.Nop())

	_ = f.SubmitCustomizeYourOwn()
	if len(nav.pushed) != 0 {
		t.Errorf("expected no navigation on invalid customize submit, got: %v", nav.pushed)
	}
}

func TestEventForm_ValidSubmit_NavigatesExactlyOnce(t *testing.T) {
	nav := &spyNavigator{}
	f := validForm(nav)

	if err := f.SubmitAISuggestedPlan(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Errors()) != 0 {
		t.Errorf("expected no errors on valid submit, got: %v", f.Errors())
	}
	if len(nav.pushed) != 1 || nav.pushed[0] != domain.RouteAISuggestedPlan {
		t.Errorf("expected single push to AI plan route, got: %v", nav.pushed)
	}
}

func TestEventForm_ValidCustomizeSubmit_PushesCustomizeRoute(t *testing.T) {
	nav := &spyNavigator{}
	f := validForm(nav)

	_ = f.SubmitCustomizeYourOwn()
	if len(nav.pushed) != 1 || nav.pushed[0] != domain.RouteCustomizePlan {
		t.Errorf("expected single push to customize route, got: %v", nav.pushed)
	}
}

func TestEventForm_ErrorsClearAfterCorrection(t *testing.T) {
	nav := &spyNavigator{}
	f := NewEventForm(nav, zerolog.Nop())
	f.SetEventType("Conference")
	f.SetEventDate(time.Now())
	f.SetGuestCount("200")
	f.ToggleService("Photography")

	_ = f.SubmitAISuggestedPlan()
	if !f.Errors().Has(domain.FieldEventName) {
		t.Fatal("expected name error on first submit")
	}

	f.SetEventName("My Event")
	_ = f.SubmitAISuggestedPlan()
	if f.Errors().Has(domain.FieldEventName) {
		t.Errorf("expected name error to clear, got: %v", f.Errors())
	}
	if len(nav.pushed) != 1 {
		t.Errorf("expected navigation after correction, got: %v", nav.pushed)
	}
}

func TestEventForm_DoubleToggleRestoresSelection(t *testing.T) {
	f := NewEventForm(&spyNavigator{}, zerolog.Nop())
	f.ToggleService("Photography")

	f.ToggleService("Catering")
	f.ToggleService("Catering")

	d := f.Draft()
	if len(d.SelectedServices) != 1 {
		t.Fatalf("expected single selection after double toggle, got: %v", d.SelectedServices)
	}
	if _, ok := d.SelectedServices["Photography"]; !ok {
		t.Error("expected Photography to remain selected")
	}
}

func TestEventForm_InputStoredVerbatim(t *testing.T) {
	f := NewEventForm(&spyNavigator{}, zerolog.Nop())
	malicious := "<script>alert('xss')</script>"

	f.SetEventName(malicious)
	f.SetGuestCount("123abc")

	d := f.Draft()
	if d.EventName != malicious {
		t.Errorf("expected verbatim event name, got %q", d.EventName)
	}
	if d.GuestCount != "123abc" {
		t.Errorf("expected verbatim guest count, got %q", d.GuestCount)
	}
}

func TestEventForm_NavigationFailurePropagates(t *testing.T) {
	navErr := errors.New("route not registered")
	nav := &spyNavigator{pushErr: navErr}
	f := validForm(nav)

	if err := f.SubmitAISuggestedPlan(); !errors.Is(err, navErr) {
		t.Fatalf("expected navigation error to propagate, got: %v", err)
	}
}

func TestEventForm_DraftCopyDoesNotAliasSelection(t *testing.T) {
	f := NewEventForm(&spyNavigator{}, zerolog.Nop())
	f.ToggleService("Photography")

	d := f.Draft()
	delete(d.SelectedServices, "Photography")

	if len(f.Draft().SelectedServices) != 1 {
		t.Error("mutating a draft copy must not affect the form state")
	}
}
