package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Promotion is a time-bounded discount for one genre.
// Start and end are normalized to UTC on construction and on every update;
// the validity window is a closed interval on both ends.
type Promotion struct {
	ID              uuid.UUID
	Title           string
	Description     string
	DiscountPercent float64
	StartDate       time.Time
	EndDate         time.Time
	Genre           Genre
}

// NewPromotion constructs a valid Promotion with a generated ID.
func NewPromotion(title, description string, discountPercent float64, startDate, endDate time.Time, genre Genre) (*Promotion, error) {
	if err := validatePromotionDetails(title, description); err != nil {
		return nil, err
	}
	if err := validateDiscount(discountPercent); err != nil {
		return nil, err
	}
	if err := validateDates(startDate, endDate); err != nil {
		return nil, err
	}
	if !genre.Valid() {
		return nil, fmt.Errorf("unknown genre %q", genre)
	}
	return &Promotion{
		ID:              uuid.New(),
		Title:           title,
		Description:     description,
		DiscountPercent: discountPercent,
		StartDate:       startDate.UTC(),
		EndDate:         endDate.UTC(),
		Genre:           genre,
	}, nil
}

// RehydratePromotion rebuilds a Promotion loaded from storage.
func RehydratePromotion(id uuid.UUID, title, description string, discountPercent float64, startDate, endDate time.Time, genre Genre) (*Promotion, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("id must be set")
	}
	p, err := NewPromotion(title, description, discountPercent, startDate, endDate, genre)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// IsActive reports whether the promotion window contains at.
// Both boundary instants count as active.
func (p *Promotion) IsActive(at time.Time) bool {
	utc := at.UTC()
	return !utc.Before(p.StartDate) && !utc.After(p.EndDate)
}

// UpdateDetails replaces title and description after re-validating them.
func (p *Promotion) UpdateDetails(title, description string) error {
	if err := validatePromotionDetails(title, description); err != nil {
		return err
	}
	p.Title = title
	p.Description = description
	return nil
}

// UpdateDiscount sets a new discount percent in (0, 100].
func (p *Promotion) UpdateDiscount(discountPercent float64) error {
	if err := validateDiscount(discountPercent); err != nil {
		return err
	}
	p.DiscountPercent = discountPercent
	return nil
}

// UpdateDates replaces the validity window, normalizing to UTC.
func (p *Promotion) UpdateDates(startDate, endDate time.Time) error {
	if err := validateDates(startDate, endDate); err != nil {
		return err
	}
	p.StartDate = startDate.UTC()
	p.EndDate = endDate.UTC()
	return nil
}

// UpdateGenre retargets the promotion to another genre.
func (p *Promotion) UpdateGenre(genre Genre) error {
	if !genre.Valid() {
		return fmt.Errorf("unknown genre %q", genre)
	}
	p.Genre = genre
	return nil
}

func validatePromotionDetails(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be empty")
	}
	return nil
}

func validateDiscount(discountPercent float64) error {
	if discountPercent <= 0 || discountPercent > 100 {
		return fmt.Errorf("discount percent must be in (0, 100], got %v", discountPercent)
	}
	return nil
}

func validateDates(startDate, endDate time.Time) error {
	if startDate.IsZero() {
		return fmt.Errorf("start date must be set")
	}
	if endDate.IsZero() {
		return fmt.Errorf("end date must be set")
	}
	if !startDate.Before(endDate) {
		return fmt.Errorf("start date must be before end date")
	}
	return nil
}
