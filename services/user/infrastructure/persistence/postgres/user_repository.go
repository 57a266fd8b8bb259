package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gamestore/pkg/database"
	"github.com/ghuser/gamestore/pkg/events"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
	domainevents "github.com/ghuser/gamestore/services/user/domain/events"
	"github.com/ghuser/gamestore/services/user/domain/models"
)

const pgUniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewUserRepository returns a UserRepository backed by the given connection
// pool and event bus. The bus publishes UserRegisteredEvents after a
// successful create, in the same transaction.
func NewUserRepository(db *database.Database, bus *events.EventBus) *UserRepository {
	return &UserRepository{db: db, bus: bus}
}

// Create persists a new User and publishes a UserRegisteredEvent within the
// same transaction. Returns ErrEmailAlreadyRegistered on email uniqueness
// violations.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
		`, user.ID, user.Name, user.Email, user.PasswordHash, user.Role)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return userdomain.ErrEmailAlreadyRegistered
			}
			return fmt.Errorf("insert user: %w", err)
		}

		if r.bus != nil {
			if err := r.publishRegistered(tx, user); err != nil {
				return fmt.Errorf("publish user registered: %w", err)
			}
		}
		return nil
	})
}

// GetByID loads a User and their full library. Returns ErrUserNotFound if absent.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id)
}

// GetByEmail loads a User and their full library by unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*models.User, error) {
	var (
		id           uuid.UUID
		name         string
		email        string
		passwordHash string
		role         string
	)
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role FROM users `+where, arg,
	).Scan(&id, &name, &email, &passwordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	library, err := r.loadLibrary(ctx, id)
	if err != nil {
		return nil, err
	}

	user, err := models.RehydrateUser(id, name, email, passwordHash, role, library)
	if err != nil {
		return nil, fmt.Errorf("rehydrate user %s: %w", id, err)
	}
	return user, nil
}

func (r *UserRepository) loadLibrary(ctx context.Context, userID uuid.UUID) ([]*models.LibraryEntry, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, user_id, game_id, purchased_at
		FROM user_games
		WHERE user_id = $1
		ORDER BY purchased_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	defer rows.Close()

	var library []*models.LibraryEntry
	for rows.Next() {
		var (
			id          uuid.UUID
			uid         uuid.UUID
			gameID      uuid.UUID
			purchasedAt time.Time
		)
		if err := rows.Scan(&id, &uid, &gameID, &purchasedAt); err != nil {
			return nil, fmt.Errorf("scan library entry: %w", err)
		}
		entry, err := models.RehydrateLibraryEntry(id, uid, gameID, purchasedAt)
		if err != nil {
			return nil, fmt.Errorf("rehydrate library entry %s: %w", id, err)
		}
		library = append(library, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library: %w", err)
	}
	return library, nil
}

// SaveLibraryDelta persists only the aggregate's tracked deltas: inserts for
// added entries and deletes for removed ones, in a single transaction so the
// library never partially updates. The (user_id, game_id) unique constraint
// is the final guard against concurrent duplicate purchases; violations map
// to ErrGameAlreadyOwned.
func (r *UserRepository) SaveLibraryDelta(ctx context.Context, user *models.User) error {
	added := user.Added()
	removed := user.Removed()
	if len(added) == 0 && len(removed) == 0 {
		return nil
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, entry := range added {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO user_games (id, user_id, game_id, purchased_at)
				VALUES ($1, $2, $3, $4)
			`, entry.ID, entry.UserID, entry.GameID, entry.PurchasedAt)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
					return fmt.Errorf("game %s: %w", entry.GameID, userdomain.ErrGameAlreadyOwned)
				}
				return fmt.Errorf("insert library entry: %w", err)
			}
		}

		for _, entry := range removed {
			if _, err := tx.ExecContext(ctx, `
				DELETE FROM user_games WHERE id = $1
			`, entry.ID); err != nil {
				return fmt.Errorf("delete library entry: %w", err)
			}
		}
		return nil
	})
}

// UpdateProfile persists name and email changes.
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE users SET name = $2, email = $3 WHERE id = $1
	`, user.ID, user.Name, user.Email)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return userdomain.ErrEmailAlreadyRegistered
		}
		return fmt.Errorf("update profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// UpdateRole persists a role change for userID.
func (r *UserRepository) UpdateRole(ctx context.Context, userID uuid.UUID, role string) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE users SET role = $2 WHERE id = $1
	`, userID, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user. Ownership records cascade via the user_games
// foreign key.
func (r *UserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return userdomain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) publishRegistered(tx *sql.Tx, user *models.User) error {
	event := domainevents.UserRegisteredEvent{
		EventID:    uuid.New(),
		Version:    1,
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicUserRegistered, msg)
}
