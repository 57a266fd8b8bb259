package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicUserRegistered is the Watermill topic published when an account is created.
const TopicUserRegistered = "user.registered"

// UserRegisteredEvent is published after a new User is persisted.
type UserRegisteredEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	OccurredAt time.Time `json:"occurred_at"`
}
