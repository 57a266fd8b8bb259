package models

import "fmt"

// Genre is a value object for a game's category.
// GenreOther doubles as the catch-all bucket used by promotion fallback:
// a promotion tagged Other applies to games whose genre has no dedicated
// promotion.
type Genre string

const (
	GenreAction     Genre = "Action"
	GenreAdventure  Genre = "Adventure"
	GenreStrategy   Genre = "Strategy"
	GenreRPG        Genre = "RPG"
	GenreSports     Genre = "Sports"
	GenreSimulation Genre = "Simulation"
	GenreOther      Genre = "Other"
)

var validGenres = map[Genre]struct{}{
	GenreAction:     {},
	GenreAdventure:  {},
	GenreStrategy:   {},
	GenreRPG:        {},
	GenreSports:     {},
	GenreSimulation: {},
	GenreOther:      {},
}

// ParseGenre constructs a valid Genre or returns an error for unknown values.
func ParseGenre(s string) (Genre, error) {
	g := Genre(s)
	if !g.Valid() {
		return "", fmt.Errorf("unknown genre %q", s)
	}
	return g, nil
}

// Valid reports whether g is one of the enumerated genres.
func (g Genre) Valid() bool {
	_, ok := validGenres[g]
	return ok
}

// String returns the underlying string value.
func (g Genre) String() string {
	return string(g)
}

// Genres lists every valid genre, for request validation messages.
func Genres() []Genre {
	return []Genre{
		GenreAction, GenreAdventure, GenreStrategy, GenreRPG,
		GenreSports, GenreSimulation, GenreOther,
	}
}
