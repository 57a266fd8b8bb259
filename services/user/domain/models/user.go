package models

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	catalogmodels "github.com/ghuser/gamestore/services/catalog/domain/models"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
)

// DefaultRole is assigned at registration when no role is requested.
const DefaultRole = "User"

// User is the aggregate root for an account and its game library.
//
// The library invariant (at most one ownership record per game id) is
// enforced here, not just by the database. Alongside the authoritative
// library the aggregate tracks which entries were added or removed since it
// was loaded, so the repository persists deltas instead of rewriting the
// whole library. Both delta lists start empty on every load.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string

	library []*LibraryEntry
	added   []*LibraryEntry
	removed []*LibraryEntry
}

// NewUser constructs a valid User with a generated ID, an empty library, and
// no password hash yet (set via SetPasswordHash after hashing).
func NewUser(name, email, role string) (*User, error) {
	if err := validateProfile(name, email); err != nil {
		return nil, err
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}
	return &User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}

// RehydrateUser rebuilds a User loaded from storage. The delta-tracking
// lists start empty: only mutations made after loading are persisted on save.
func RehydrateUser(id uuid.UUID, name, email, passwordHash, role string, library []*LibraryEntry) (*User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id must be set")
	}
	if err := validateProfile(name, email); err != nil {
		return nil, err
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, fmt.Errorf("password hash must not be empty")
	}
	if err := validateRole(role); err != nil {
		return nil, err
	}

	u := &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	for _, entry := range library {
		if u.Owns(entry.GameID) {
			return nil, fmt.Errorf("library holds duplicate ownership of game %s", entry.GameID)
		}
		u.library = append(u.library, entry)
	}
	return u, nil
}

// Library returns the user's ownership records. Callers must not mutate the
// returned slice.
func (u *User) Library() []*LibraryEntry {
	return u.library
}

// Added returns the ownership records created since the aggregate was loaded.
func (u *User) Added() []*LibraryEntry {
	return u.added
}

// Removed returns the ownership records deleted since the aggregate was loaded.
func (u *User) Removed() []*LibraryEntry {
	return u.removed
}

// Owns reports whether the library contains an ownership record for gameID.
func (u *User) Owns(gameID uuid.UUID) bool {
	for _, entry := range u.library {
		if entry.GameID == gameID {
			return true
		}
	}
	return false
}

// AddToLibrary creates an ownership record for game and tracks it in the
// added-delta. Adding an already-owned game is a hard failure, not a no-op.
func (u *User) AddToLibrary(game *catalogmodels.Game) error {
	if game == nil {
		return fmt.Errorf("game must not be nil")
	}
	if u.Owns(game.ID) {
		return fmt.Errorf("game %q (%s): %w", game.Title, game.ID, userdomain.ErrGameAlreadyOwned)
	}

	entry, err := NewLibraryEntry(u.ID, game.ID)
	if err != nil {
		return err
	}
	u.library = append(u.library, entry)
	u.added = append(u.added, entry)
	return nil
}

// RemoveFromLibrary removes the ownership record for gameID and tracks it in
// the removed-delta. Removing a non-owned game is an idempotent no-op.
func (u *User) RemoveFromLibrary(gameID uuid.UUID) {
	for i, entry := range u.library {
		if entry.GameID == gameID {
			u.library = append(u.library[:i], u.library[i+1:]...)
			u.removed = append(u.removed, entry)
			return
		}
	}
}

// SetPasswordHash overwrites the stored hash. Empty hashes are rejected.
func (u *User) SetPasswordHash(hash string) error {
	if strings.TrimSpace(hash) == "" {
		return fmt.Errorf("password hash must not be empty")
	}
	u.PasswordHash = hash
	return nil
}

// SetRole overwrites the role. Role is an open string; only non-emptiness is
// validated here, authorization checks live in the application layer.
func (u *User) SetRole(role string) error {
	if err := validateRole(role); err != nil {
		return err
	}
	u.Role = role
	return nil
}

// UpdateProfile replaces name and email after re-validating them.
func (u *User) UpdateProfile(name, email string) error {
	if err := validateProfile(name, email); err != nil {
		return err
	}
	u.Name = name
	u.Email = email
	return nil
}

func validateProfile(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be empty")
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email must not be empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("email %q is not a valid mailbox address", email)
	}
	return nil
}

func validateRole(role string) error {
	if strings.TrimSpace(role) == "" {
		return fmt.Errorf("role must not be empty")
	}
	return nil
}
