package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
)

type stubAuthAPI struct {
	token string
	user  *domain.User
	err   error
}

func (s *stubAuthAPI) Login(context.Context, string, string) (string, *domain.User, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func TestAuth_Login_CachesTokenAndUser(t *testing.T) {
	store := newMemStore()
	session := newSession(store)
	api := &stubAuthAPI{token: "jwt-token", user: &domain.User{ID: "org-1", Role: domain.RoleOrganizer}}
	a := NewAuth(api, session, zerolog.Nop())
	ctx := context.Background()

	user, err := a.Login(ctx, "ayesha@example.com", "organizer-pass")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != "org-1" {
		t.Errorf("unexpected user: %+v", user)
	}

	tok, _ := session.Token(ctx)
	if tok != "jwt-token" {
		t.Errorf("expected token cached, got %q", tok)
	}
	cached, err := session.User(ctx)
	if err != nil || cached.ID != "org-1" {
		t.Errorf("expected user cached, got %+v (err %v)", cached, err)
	}
}

func TestAuth_Login_EmptyCredentialsRejectedLocally(t *testing.T) {
	a := NewAuth(&stubAuthAPI{}, newSession(newMemStore()), zerolog.Nop())

	if _, err := a.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
	if _, err := a.Login(context.Background(), "a@b.c", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestAuth_Login_FailureCachesNothing(t *testing.T) {
	store := newMemStore()
	session := newSession(store)
	a := NewAuth(&stubAuthAPI{err: domain.ErrInvalidCredentials}, session, zerolog.Nop())
	ctx := context.Background()

	if _, err := a.Login(ctx, "a@b.c", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected login failure, got: %v", err)
	}
	if tok, _ := session.Token(ctx); tok != "" {
		t.Errorf("expected no token cached, got %q", tok)
	}
	if _, err := session.User(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("expected no user cached, got: %v", err)
	}
}

func TestAuth_Logout_ClearsSession(t *testing.T) {
	store := newMemStore()
	session := newSession(store)
	a := NewAuth(&stubAuthAPI{}, session, zerolog.Nop())
	ctx := context.Background()

	_ = session.SetUser(ctx, &domain.User{ID: "org-1", Role: domain.RoleOrganizer})
	_ = session.SetToken(ctx, "tok")

	if err := a.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := session.User(ctx); !errors.Is(err, domain.ErrNoSession) {
		t.Errorf("expected session cleared, got: %v", err)
	}
}
