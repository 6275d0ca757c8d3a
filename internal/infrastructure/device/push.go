// Package device holds the thin adapters around device capabilities. Real
// builds wire the platform push provider here; dev builds inject a static
// token through configuration.
package device

import (
	"context"

	"github.com/planora/planora-app/internal/core/domain"
)

// StaticTokenSource returns a fixed push token. An empty token behaves like
// a device that cannot receive pushes.
type StaticTokenSource struct {
	token string
}

func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) PushToken(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", domain.ErrPushUnavailable
	}
	return s.token, nil
}
