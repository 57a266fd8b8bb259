package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

// GameRepository is the persistence interface for the Game aggregate.
// The domain layer owns this interface; infrastructure implements it.
type GameRepository interface {
	// Create persists a new Game. Returns ErrGameAlreadyExists when another
	// game holds the same title.
	Create(ctx context.Context, game *models.Game) error

	// GetByID returns ErrGameNotFound when the game does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error)

	// GetByTitle returns ErrGameNotFound when no game holds the title.
	GetByTitle(ctx context.Context, title string) (*models.Game, error)

	// GetByIDs loads the games whose ids appear in ids, in one batch.
	// Unknown ids are silently absent from the result; duplicate ids
	// resolve to a single game.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Game, error)

	// Update persists detail or price changes to an existing Game.
	Update(ctx context.Context, game *models.Game) error

	// Delete removes a game and cascades its ownership records.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PromotionRepository is the persistence interface for promotions.
type PromotionRepository interface {
	// Create persists a new Promotion. Returns ErrPromotionAlreadyExists
	// when another promotion holds the same title.
	Create(ctx context.Context, promotion *models.Promotion) error

	// GetByID returns ErrPromotionNotFound when the promotion does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error)

	// GetByTitle returns ErrPromotionNotFound when no promotion holds the title.
	GetByTitle(ctx context.Context, title string) (*models.Promotion, error)

	// Active returns the promotions whose closed UTC window contains now.
	Active(ctx context.Context, now time.Time) ([]*models.Promotion, error)

	// Update persists changes to an existing Promotion.
	Update(ctx context.Context, promotion *models.Promotion) error

	// Delete removes a promotion.
	Delete(ctx context.Context, id uuid.UUID) error
}
