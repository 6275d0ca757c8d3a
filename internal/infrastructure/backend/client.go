// Package backend is the typed HTTP client for the Planora REST API. It
// implements the ports backend interfaces; each method maps to exactly one
// endpoint call.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Config captures the settings for building a Client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Tokens supplies the session bearer token; nil means unauthenticated
	// calls only.
	Tokens ports.TokenSource
	Logger zerolog.Logger
}

// Client talks to the Planora backend. It satisfies ports.VendorAPI,
// ports.CategoryAPI, ports.ProfileAPI, ports.PushAPI, ports.NotificationAPI
// and ports.AuthAPI.
type Client struct {
	http    *http.Client
	baseURL string
	tokens  ports.TokenSource
	log     zerolog.Logger
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
		tokens:  cfg.Tokens,
		log:     cfg.Logger,
	}
}

// errorEnvelope is the backend's canonical error body: {"error": "..."}.
type errorEnvelope struct {
	Error string `json:"error"`
}

// do performs one JSON request/response round trip. Non-2xx responses are
// decoded into the error envelope and mapped to domain errors where the
// status is unambiguous.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("backend: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp, method, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("backend: decode %s %s response: %w", method, path, err)
	}
	return nil
}

// authorize attaches the session bearer token when one is cached. An expired
// token is still sent (the server is the authority) but flagged in the log.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token(ctx)
	if err != nil || token == "" {
		return
	}
	if expired(token) {
		c.log.Warn().Msg("session token expired, request will likely be rejected")
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// expired inspects the token's exp claim without verifying the signature.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

func (c *Client) mapError(resp *http.Response, method, path string) error {
	var env errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	msg := env.Error
	if msg == "" {
		msg = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrInvalidCredentials, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrVendorNotFound, msg)
	default:
		return fmt.Errorf("backend: %s %s: %s (status %d)", method, path, msg, resp.StatusCode)
	}
}
