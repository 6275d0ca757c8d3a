package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Store keys. The category id and name live under two separate keys so the
// listing and filter screens can read either without re-fetching category
// metadata.
const (
	keyUser         = "user"
	keyToken        = "token"
	keyCategoryID   = "categoryId"
	keyCategoryName = "categoryName"
)

// defaultCategoryName is shown as the listing header when no category has
// been selected yet.
const defaultCategoryName = "Category"

// Session is the typed accessor over the secure store. It replaces ambient
// string-keyed access with explicit user/token/category operations; all
// JSON encoding happens here.
type Session struct {
	store ports.Store
	log   zerolog.Logger
}

func NewSession(store ports.Store, log zerolog.Logger) *Session {
	return &Session{store: store, log: log}
}

// User returns the cached session user. A missing record yields
// domain.ErrNoSession; a record that no longer parses yields
// domain.ErrSessionCorrupt with the parse error wrapped in.
func (s *Session) User(ctx context.Context) (*domain.User, error) {
	raw, err := s.store.Get(ctx, keyUser)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil, domain.ErrNoSession
		}
		return nil, fmt.Errorf("session: read user: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionCorrupt, err)
	}
	return &user, nil
}

// SetUser overwrites the cached session user.
func (s *Session) SetUser(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	return s.store.Save(ctx, keyUser, string(raw))
}

// ClearUser removes the cached session user and bearer token.
func (s *Session) ClearUser(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyUser); err != nil {
		return err
	}
	return s.store.Delete(ctx, keyToken)
}

// Token returns the cached bearer token, or an empty string when the user
// is not logged in.
func (s *Session) Token(ctx context.Context) (string, error) {
	tok, err := s.store.Get(ctx, keyToken)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("session: read token: %w", err)
	}
	return tok, nil
}

// SetToken caches the bearer token returned at login.
func (s *Session) SetToken(ctx context.Context, token string) error {
	return s.store.Save(ctx, keyToken, token)
}

// SelectCategory remembers the category the user tapped, for the listing
// and filter screens. The previous selection is overwritten.
func (s *Session) SelectCategory(ctx context.Context, c domain.Category) error {
	if err := s.store.Save(ctx, keyCategoryID, c.ID); err != nil {
		return fmt.Errorf("session: save category id: %w", err)
	}
	if err := s.store.Save(ctx, keyCategoryName, c.Name); err != nil {
		return fmt.Errorf("session: save category name: %w", err)
	}
	return nil
}

// SelectedCategory returns the remembered category. When nothing has been
// selected the id is empty and the name falls back to a placeholder.
func (s *Session) SelectedCategory(ctx context.Context) domain.Category {
	c := domain.Category{Name: defaultCategoryName}
	if id, err := s.store.Get(ctx, keyCategoryID); err == nil {
		c.ID = id
	}
	if name, err := s.store.Get(ctx, keyCategoryName); err == nil && name != "" {
		c.Name = name
	}
	return c
}
