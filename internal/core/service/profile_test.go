package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

type stubCategoryAPI struct {
	categories []domain.Category
	err        error
}

func (s *stubCategoryAPI) Categories(context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

type stubProfileAPI struct {
	updated *domain.User
	err     error
	calls   []ports.ProfileUpdate
}

func (s *stubProfileAPI) UpdateProfile(_ context.Context, _ string, u ports.ProfileUpdate) (*domain.User, error) {
	s.calls = append(s.calls, u)
	if s.err != nil {
		return nil, s.err
	}
	return s.updated, nil
}

func catalogue() *stubCategoryAPI {
	return &stubCategoryAPI{categories: []domain.Category{
		{ID: "cat-1", Name: "Photography"},
		{ID: "cat-2", Name: "Caterings"},
		{ID: "cat-5", Name: "Mehndi"},
	}}
}

func newProfile(store *memStore, cats ports.CategoryAPI, profiles ports.ProfileAPI) *Profile {
	return NewProfile(newSession(store), cats, profiles, zerolog.Nop())
}

func TestProfile_Load_NoSessionPropagates(t *testing.T) {
	p := newProfile(newMemStore(), catalogue(), &stubProfileAPI{})

	_, err := p.Load(context.Background())
	if !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got: %v", err)
	}
}

func TestProfile_Load_PrefillsFromCachedVendor(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{
		ID: "ven-1", Role: domain.RoleVendor,
		Name: "Lens & Light Studio", Email: "studio@example.com",
		PhoneNumber:        "03001234567",
		BusinessCategoryID: "cat-1",
		PhotographyDetails: &domain.BusinessDetails{
			Staff:        "MALE",
			RefundPolicy: "REFUNDABLE",
			Description:  "Weddings and events",
			CityCovered:  "Lahore, Islamabad",
		},
		ContactDetails: &domain.ContactDetails{Address: "12 Mall Road", City: "Lahore"},
	})
	p := newProfile(store, catalogue(), &stubProfileAPI{})

	form, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Name != "Lens & Light Studio" || form.Email != "studio@example.com" {
		t.Errorf("unexpected identity prefill: %+v", form)
	}
	if form.Kind != domain.KindPhotography {
		t.Errorf("expected photography kind, got %q", form.Kind)
	}
	if form.Staff != "MALE" || form.RefundPolicy != "REFUNDABLE" || form.CitiesCovered != "Lahore, Islamabad" {
		t.Errorf("unexpected detail prefill: %+v", form)
	}
	if form.Address != "12 Mall Road" {
		t.Errorf("expected contact address fallback, got %q", form.Address)
	}
}

func TestProfile_Load_TopLevelAddressWins(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{
		ID: "ven-1", Role: domain.RoleVendor, Name: "Studio",
		Address:        "7 Canal View",
		ContactDetails: &domain.ContactDetails{Address: "12 Mall Road"},
	})
	p := newProfile(store, catalogue(), &stubProfileAPI{})

	form, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Address != "7 Canal View" {
		t.Errorf("expected top-level address, got %q", form.Address)
	}
}

func TestProfile_Load_CatalogueFailureDegradesToUnknownKind(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{
		ID: "ven-1", Role: domain.RoleVendor, Name: "Studio",
		BusinessCategoryID: "cat-1",
		PhotographyDetails: &domain.BusinessDetails{Staff: "MALE"},
	})
	cats := &stubCategoryAPI{err: errors.New("backend down")}
	p := newProfile(store, cats, &stubProfileAPI{})

	form, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Kind != domain.KindUnknown {
		t.Errorf("expected unknown kind when catalogue is unavailable, got %q", form.Kind)
	}
	if form.Staff != "" {
		t.Errorf("expected no detail prefill for unknown kind, got %q", form.Staff)
	}
}

func TestProfile_Load_KindWithoutDetailBlock(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{
		ID: "ven-3", Role: domain.RoleVendor, Name: "Henna House",
		BusinessCategoryID: "cat-5",
	})
	p := newProfile(store, catalogue(), &stubProfileAPI{})

	form, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if form.Kind != domain.KindMehndi {
		t.Errorf("expected mehndi kind, got %q", form.Kind)
	}
	if form.Staff != "" || form.Description != "" {
		t.Errorf("expected empty detail fields, got: %+v", form)
	}
}

func TestProfile_Save_ValidationErrors(t *testing.T) {
	p := newProfile(newMemStore(), catalogue(), &stubProfileAPI{})

	err := p.Save(context.Background(), ProfileForm{Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("expected name message, got: %v", err)
	}
	if !strings.Contains(err.Error(), "email must be a valid email") {
		t.Errorf("expected email message, got: %v", err)
	}
}

func TestProfile_Save_NoSessionIsFriendlyError(t *testing.T) {
	p := newProfile(newMemStore(), catalogue(), &stubProfileAPI{})

	err := p.Save(context.Background(), ProfileForm{Name: "Studio"})
	if err == nil || err.Error() != "user not found locally" {
		t.Fatalf("expected local-user error, got: %v", err)
	}
}

func TestProfile_Save_UpdatesBackendAndCache(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{ID: "ven-1", Role: domain.RoleVendor, Name: "Old Name"})
	profiles := &stubProfileAPI{
		updated: &domain.User{ID: "ven-1", Role: domain.RoleVendor, Name: "New Name", Email: "new@example.com"},
	}
	session := newSession(store)
	p := NewProfile(session, catalogue(), profiles, zerolog.Nop())
	ctx := context.Background()

	err := p.Save(ctx, ProfileForm{Name: "New Name", Email: "new@example.com", PhoneNumber: "0300"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(profiles.calls) != 1 {
		t.Fatalf("expected one backend patch, got %d", len(profiles.calls))
	}
	if profiles.calls[0].Name != "New Name" || profiles.calls[0].PhoneNumber != "0300" {
		t.Errorf("unexpected patch payload: %+v", profiles.calls[0])
	}

	cached, err := session.User(ctx)
	if err != nil {
		t.Fatalf("User: %v", err)
	}
	if cached.Name != "New Name" {
		t.Errorf("expected cache refreshed with backend record, got %q", cached.Name)
	}
}

func TestProfile_Save_BackendFailureLeavesCacheUntouched(t *testing.T) {
	store := newMemStore()
	cacheUser(t, store, &domain.User{ID: "ven-1", Role: domain.RoleVendor, Name: "Old Name"})
	profiles := &stubProfileAPI{err: errors.New("backend down")}
	session := newSession(store)
	p := NewProfile(session, catalogue(), profiles, zerolog.Nop())
	ctx := context.Background()

	err := p.Save(ctx, ProfileForm{Name: "New Name"})
	if err == nil || !strings.Contains(err.Error(), "save profile") {
		t.Fatalf("expected wrapped save error, got: %v", err)
	}

	cached, _ := session.User(ctx)
	if cached.Name != "Old Name" {
		t.Errorf("expected cache untouched on failure, got %q", cached.Name)
	}
}
