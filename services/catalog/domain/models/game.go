package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Game is the catalog aggregate for a purchasable title.
// Immutable after construction except through UpdateDetails and ChangePrice,
// which re-run validation before mutating.
type Game struct {
	ID          uuid.UUID
	Title       string
	Description string
	Genre       Genre
	Price       float64
	CreatedAt   time.Time
}

// NewGame constructs a valid Game with a generated ID and current UTC timestamp.
func NewGame(title, description string, genre Genre, price float64) (*Game, error) {
	if err := validateGameFields(title, description, genre); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	return &Game{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Genre:       genre,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// RehydrateGame rebuilds a Game loaded from storage.
func RehydrateGame(id uuid.UUID, title, description string, genre Genre, price float64, createdAt time.Time) (*Game, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id must be set")
	}
	if err := validateGameFields(title, description, genre); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	return &Game{
		ID:          id,
		Title:       title,
		Description: description,
		Genre:       genre,
		Price:       price,
		CreatedAt:   createdAt.UTC(),
	}, nil
}

// UpdateDetails replaces title, description, and genre after re-validating them.
func (g *Game) UpdateDetails(title, description string, genre Genre) error {
	if err := validateGameFields(title, description, genre); err != nil {
		return err
	}
	g.Title = title
	g.Description = description
	g.Genre = genre
	return nil
}

// ChangePrice sets a new price. Negative prices are rejected.
func (g *Game) ChangePrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	g.Price = price
	return nil
}

func validateGameFields(title, description string, genre Genre) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be empty")
	}
	if !genre.Valid() {
		return fmt.Errorf("unknown genre %q", genre)
	}
	return nil
}
