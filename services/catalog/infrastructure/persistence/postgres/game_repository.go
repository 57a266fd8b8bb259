package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gamestore/pkg/database"
	"github.com/ghuser/gamestore/pkg/events"
	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	domainevents "github.com/ghuser/gamestore/services/catalog/domain/events"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

const pgUniqueViolation = "23505"

// GameRepository implements repositories.GameRepository against PostgreSQL.
type GameRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewGameRepository returns a GameRepository backed by the given connection
// pool and event bus. The bus publishes GameCreatedEvents after a successful
// create, in the same transaction.
func NewGameRepository(db *database.Database, bus *events.EventBus) *GameRepository {
	return &GameRepository{db: db, bus: bus}
}

// Create persists a new Game and publishes a GameCreatedEvent within the same
// transaction. Returns ErrGameAlreadyExists on title uniqueness violations.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO games (id, title, description, genre, price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, game.ID, game.Title, game.Description, game.Genre.String(), game.Price, game.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return catalogdomain.ErrGameAlreadyExists
			}
			return fmt.Errorf("insert game: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, game); err != nil {
				return fmt.Errorf("publish game created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Game by id. Returns ErrGameNotFound if absent.
func (r *GameRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, title, description, genre, price, created_at
		FROM games WHERE id = $1
	`, id)
	return scanGame(row)
}

// GetByTitle retrieves a Game by its unique title. Returns ErrGameNotFound if absent.
func (r *GameRepository) GetByTitle(ctx context.Context, title string) (*models.Game, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, title, description, genre, price, created_at
		FROM games WHERE title = $1
	`, title)
	return scanGame(row)
}

// GetByIDs loads the distinct games matching ids in one batch. Ids that do
// not resolve are absent from the result.
func (r *GameRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, title, description, genre, price, created_at
		FROM games WHERE id = ANY($1::uuid[])
	`, strIDs)
	if err != nil {
		return nil, fmt.Errorf("query games by ids: %w", err)
	}
	defer rows.Close()

	var games []*models.Game
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate games: %w", err)
	}
	return games, nil
}

// Update persists detail or price changes to an existing Game.
func (r *GameRepository) Update(ctx context.Context, game *models.Game) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE games SET title = $2, description = $3, genre = $4, price = $5
		WHERE id = $1
	`, game.ID, game.Title, game.Description, game.Genre.String(), game.Price)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return catalogdomain.ErrGameAlreadyExists
		}
		return fmt.Errorf("update game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrGameNotFound
	}
	return nil
}

// Delete removes a game. Ownership records cascade via the user_games
// foreign key.
func (r *GameRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrGameNotFound
	}
	return nil
}

func (r *GameRepository) publishCreated(tx *sql.Tx, game *models.Game) error {
	event := domainevents.GameCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		GameID:      game.ID,
		Title:       game.Title,
		Description: game.Description,
		Genre:       game.Genre.String(),
		Price:       game.Price,
		OccurredAt:  game.CreatedAt,
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
	return p.Publish(domainevents.TopicGameCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanGame maps one games row to a rehydrated domain Game.
func scanGame(row rowScanner) (*models.Game, error) {
	var (
		id          uuid.UUID
		title       string
		description string
		genre       string
		price       float64
		createdAt   sql.NullTime
	)
	if err := row.Scan(&id, &title, &description, &genre, &price, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrGameNotFound
		}
		return nil, fmt.Errorf("scan game: %w", err)
	}
	g, err := models.RehydrateGame(id, title, description, models.Genre(genre), price, createdAt.Time)
	if err != nil {
		return nil, fmt.Errorf("rehydrate game %s: %w", id, err)
	}
	return g, nil
}
