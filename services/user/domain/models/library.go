package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LibraryEntry is the ownership record joining one user to one owned game.
// Created exactly once per (user, game) pair.
type LibraryEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	GameID      uuid.UUID
	PurchasedAt time.Time
}

// NewLibraryEntry creates an ownership record with a fresh identity and the
// current UTC timestamp.
func NewLibraryEntry(userID, gameID uuid.UUID) (*LibraryEntry, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id must be set")
	}
	if gameID == uuid.Nil {
		return nil, fmt.Errorf("game id must be set")
	}
	return &LibraryEntry{
		ID:          uuid.New(),
		UserID:      userID,
		GameID:      gameID,
		PurchasedAt: time.Now().UTC(),
	}, nil
}

// RehydrateLibraryEntry rebuilds an ownership record loaded from storage.
func RehydrateLibraryEntry(id, userID, gameID uuid.UUID, purchasedAt time.Time) (*LibraryEntry, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id must be set")
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user id must be set")
	}
	if gameID == uuid.Nil {
		return nil, fmt.Errorf("game id must be set")
	}
	if purchasedAt.IsZero() {
		return nil, fmt.Errorf("purchase timestamp must be set")
	}
	return &LibraryEntry{
		ID:          id,
		UserID:      userID,
		GameID:      gameID,
		PurchasedAt: purchasedAt.UTC(),
	}, nil
}
