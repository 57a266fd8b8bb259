package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/services/user/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// GetByID and GetByEmail load the full library; the returned aggregate's
// delta-tracking lists are empty. SaveLibraryDelta persists only those
// deltas; it never rewrites the whole library.
type UserRepository interface {
	// Create persists a new User. Returns ErrEmailAlreadyRegistered when
	// another account holds the email.
	Create(ctx context.Context, user *models.User) error

	// GetByID returns ErrUserNotFound when the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetByEmail returns ErrUserNotFound when no account holds the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// SaveLibraryDelta atomically inserts the aggregate's added entries and
	// deletes its removed entries in one transaction. A unique-constraint
	// conflict on (user_id, game_id) surfaces as ErrGameAlreadyOwned.
	SaveLibraryDelta(ctx context.Context, user *models.User) error

	// UpdateProfile persists name and email changes.
	UpdateProfile(ctx context.Context, user *models.User) error

	// UpdateRole persists a role change for userID.
	UpdateRole(ctx context.Context, userID uuid.UUID, role string) error

	// Delete removes a user and cascades their ownership records.
	Delete(ctx context.Context, userID uuid.UUID) error
}
