package domain

import "time"

// Notification is a single entry on the notifications screen.
type Notification struct {
	ID          string    `json:"_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
