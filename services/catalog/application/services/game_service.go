package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/gamestore/pkg/cache"
	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
	"github.com/ghuser/gamestore/services/catalog/domain/repositories"
	domainservices "github.com/ghuser/gamestore/services/catalog/domain/services"
)

// GameService orchestrates creation and retrieval of Games.
// Event publishing is handled by the repository layer (outbox pattern).
// Reads are served from Redis cache when available.
type GameService struct {
	repo  repositories.GameRepository
	cache *pkgcache.GameCache
}

// NewGameService returns a GameService wired with the given repository and cache.
func NewGameService(repo repositories.GameRepository, gameCache *pkgcache.GameCache) *GameService {
	return &GameService{repo: repo, cache: gameCache}
}

// Create validates and persists a Game. The repository publishes GameCreatedEvent.
func (s *GameService) Create(ctx context.Context, title, description string, genre models.Genre, price float64) (*models.Game, error) {
	if err := domainservices.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidGame, err)
	}

	game, err := models.NewGame(title, description, genre, price)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidGame, err)
	}

	// Early duplicate check; the unique index on title is the backstop.
	if _, err := s.repo.GetByTitle(ctx, title); err == nil {
		return nil, fmt.Errorf("%w: title %q", catalogdomain.ErrGameAlreadyExists, title)
	} else if !errors.Is(err, catalogdomain.ErrGameNotFound) {
		return nil, fmt.Errorf("check title: %w", err)
	}

	if err := s.repo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	return game, nil
}

// GetByID retrieves a Game using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *GameService) GetByID(ctx context.Context, id uuid.UUID) (*models.Game, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			game, err := models.RehydrateGame(cached.ID, cached.Title, cached.Description,
				models.Genre(cached.Genre), cached.Price, cached.CreatedAt)
			if err == nil {
				return game, nil
			}
		}
		// Misses, cache errors, and malformed entries all fall through to
		// Postgres; the warm below repairs the entry.
	}

	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedGame{
				ID:          game.ID,
				Title:       game.Title,
				Description: game.Description,
				Genre:       game.Genre.String(),
				Price:       game.Price,
				CreatedAt:   game.CreatedAt,
			})
		}()
	}

	return game, nil
}

// Update applies detail and price changes to an existing game and
// invalidates its cache entry.
func (s *GameService) Update(ctx context.Context, id uuid.UUID, title, description string, genre models.Genre, price float64) (*models.Game, error) {
	if err := domainservices.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidGame, err)
	}

	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get game: %w", err)
	}

	if err := game.UpdateDetails(title, description, genre); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidGame, err)
	}
	if err := game.ChangePrice(price); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidGame, err)
	}

	if err := s.repo.Update(ctx, game); err != nil {
		return nil, fmt.Errorf("update game: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}

	return game, nil
}

// Delete removes a game and its cache entry. Ownership rows cascade in
// storage.
func (s *GameService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
