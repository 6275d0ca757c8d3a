package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Categories fetches the vendor category catalogue.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var cats []domain.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// UpdateProfile patches the user's profile and returns the updated record.
func (c *Client) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	var user domain.User
	path := "/auth/update-profile/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodPatch, path, nil, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type pushTokenRequest struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// RegisterPushToken posts the device push token for the user.
func (c *Client) RegisterPushToken(ctx context.Context, userID, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/push-token", nil, pushTokenRequest{UserID: userID, Token: token}, nil)
}

// notificationsEnvelope is the list wrapper returned by the notifications
// endpoint: {success, count, data}.
type notificationsEnvelope struct {
	Success bool                  `json:"success"`
	Count   int                   `json:"count"`
	Data    []domain.Notification `json:"data"`
}

// Notifications fetches the user's notifications, unwrapping the envelope.
func (c *Client) Notifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	var env notificationsEnvelope
	if err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(userID), nil, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login authenticates and returns the bearer token plus the account record.
func (c *Client) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}
