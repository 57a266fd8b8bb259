package domain

import "errors"

// Sentinel errors for the user domain. Use errors.Is() to check these.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyRegistered indicates another account holds the email.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrGameAlreadyOwned indicates the user's library already contains the game.
	ErrGameAlreadyOwned = errors.New("game already owned")

	// ErrInvalidUser indicates user fields violate domain constraints.
	ErrInvalidUser = errors.New("invalid user")

	// ErrInvalidCredentials indicates a failed email/password login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthorized indicates the caller lacks the role required for the operation.
	ErrNotAuthorized = errors.New("not authorized")
)
