package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/planora/planora-app/internal/core/domain"
	"github.com/planora/planora-app/internal/core/ports"
)

// Notifications loads the notification list. Failures are logged and the
// screen renders empty; there is no retry.
type Notifications struct {
	api ports.NotificationAPI
	log zerolog.Logger
}

func NewNotifications(api ports.NotificationAPI, log zerolog.Logger) *Notifications {
	return &Notifications{api: api, log: log}
}

func (n *Notifications) Fetch(ctx context.Context, userID string) []domain.Notification {
	items, err := n.api.Notifications(ctx, userID)
	if err != nil {
		n.log.Error().Err(err).Str("user_id", userID).Msg("error fetching notifications")
		return nil
	}
	return items
}
