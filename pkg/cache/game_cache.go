package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// GameCacheTTL is the time-to-live for cached games.
	GameCacheTTL = 24 * time.Hour

	gameCacheKeyPrefix = "game"
)

// CachedGame is the denormalized read model stored in Redis.
// Fields are stored as a Redis hash. Prices cached here are base catalog
// prices; promotion discounts are always computed live.
type CachedGame struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameCache provides structured read/write operations for game cache entries.
// Key format: "game:{gameID}"
type GameCache struct {
	client *RedisClient
}

// NewGameCache creates a new GameCache backed by the given RedisClient.
func NewGameCache(r *RedisClient) *GameCache {
	return &GameCache{client: r}
}

// Get retrieves a cached game by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *GameCache) Get(ctx context.Context, gameID uuid.UUID) (*CachedGame, error) {
	key := c.key(gameID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	price, err := strconv.ParseFloat(vals["price"], 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedGame{
		ID:          id,
		Title:       vals["title"],
		Description: vals["description"],
		Genre:       vals["genre"],
		Price:       price,
		CreatedAt:   createdAt,
	}, nil
}

// Set writes a cached game as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *GameCache) Set(ctx context.Context, game *CachedGame) error {
	key := c.key(game.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", game.ID.String(),
		"title", game.Title,
		"description", game.Description,
		"genre", game.Genre,
		"price", strconv.FormatFloat(game.Price, 'f', -1, 64),
		"created_at", game.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, GameCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached game. Called on game updates and deletes so reads
// never serve stale prices.
func (c *GameCache) Delete(ctx context.Context, gameID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(gameID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "game:{gameID}"
func (c *GameCache) key(gameID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", gameCacheKeyPrefix, gameID)
}
