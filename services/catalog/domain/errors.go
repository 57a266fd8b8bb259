package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrGameNotFound indicates the requested game does not exist.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameAlreadyExists indicates a game with the same title already exists.
	ErrGameAlreadyExists = errors.New("game already exists")

	// ErrPromotionNotFound indicates the requested promotion does not exist.
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrPromotionAlreadyExists indicates a promotion with the same title already exists.
	ErrPromotionAlreadyExists = errors.New("promotion already exists")

	// ErrInvalidGame indicates game fields violate domain constraints.
	ErrInvalidGame = errors.New("invalid game")

	// ErrInvalidPromotion indicates promotion fields violate domain constraints.
	ErrInvalidPromotion = errors.New("invalid promotion")
)
