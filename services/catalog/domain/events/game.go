package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicGameCreated is the Watermill topic published when a Game enters the catalog.
const TopicGameCreated = "catalog.game.created"

// GameCreatedEvent is published after a new Game is persisted.
// The worker warms the Redis read-model cache from it.
type GameCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	GameID      uuid.UUID `json:"game_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	OccurredAt  time.Time `json:"occurred_at"`
}
