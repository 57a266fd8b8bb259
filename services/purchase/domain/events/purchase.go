package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/services/purchase/domain/pricing"
)

// TopicPurchaseCompleted carries PurchaseCompletedEvent messages.
const TopicPurchaseCompleted = "purchase.completed"

// PurchaseCompletedEvent is emitted after a purchase has been persisted to
// the buyer's library.
type PurchaseCompletedEvent struct {
	EventID    uuid.UUID          `json:"event_id"`
	Version    int                `json:"version"`
	UserID     uuid.UUID          `json:"user_id"`
	GameIDs    []uuid.UUID        `json:"game_ids"`
	Items      []pricing.LineItem `json:"items"`
	Total      float64            `json:"total"`
	OccurredAt time.Time          `json:"occurred_at"`
}
