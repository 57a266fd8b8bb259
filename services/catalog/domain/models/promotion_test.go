package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	promoStart = time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	promoEnd   = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
)

func TestNewPromotion(t *testing.T) {
	t.Run("valid promotion", func(t *testing.T) {
		p, err := NewPromotion("Winter Sale", "season discounts", 25, promoStart, promoEnd, GenreRPG)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("dates normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC-3", -3*60*60)
		p, err := NewPromotion("Winter Sale", "season discounts", 25,
			promoStart.In(loc), promoEnd.In(loc), GenreRPG)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.StartDate.Location() != time.UTC || p.EndDate.Location() != time.UTC {
			t.Fatal("expected UTC dates")
		}
		if !p.StartDate.Equal(promoStart) {
			t.Fatalf("expected %v, got %v", promoStart, p.StartDate)
		}
	})

	t.Run("discount of exactly 100 allowed", func(t *testing.T) {
		if _, err := NewPromotion("Free Week", "everything free", 100, promoStart, promoEnd, GenreOther); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name     string
		title    string
		desc     string
		discount float64
		start    time.Time
		end      time.Time
		genre    Genre
	}{
		{"empty title", "", "desc", 25, promoStart, promoEnd, GenreRPG},
		{"empty description", "Title", "", 25, promoStart, promoEnd, GenreRPG},
		{"zero discount", "Title", "desc", 0, promoStart, promoEnd, GenreRPG},
		{"negative discount", "Title", "desc", -10, promoStart, promoEnd, GenreRPG},
		{"discount above 100", "Title", "desc", 100.01, promoStart, promoEnd, GenreRPG},
		{"zero start date", "Title", "desc", 25, time.Time{}, promoEnd, GenreRPG},
		{"zero end date", "Title", "desc", 25, promoStart, time.Time{}, GenreRPG},
		{"start equals end", "Title", "desc", 25, promoStart, promoStart, GenreRPG},
		{"start after end", "Title", "desc", 25, promoEnd, promoStart, GenreRPG},
		{"unknown genre", "Title", "desc", 25, promoStart, promoEnd, Genre("Puzzle")},
	}
	for _, tt := range tests {
		t.Run(tt.name+" returns error", func(t *testing.T) {
			if _, err := NewPromotion(tt.title, tt.desc, tt.discount, tt.start, tt.end, tt.genre); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestPromotion_IsActive(t *testing.T) {
	p, err := NewPromotion("Winter Sale", "season discounts", 25, promoStart, promoEnd, GenreRPG)
	if err != nil {
		t.Fatalf("NewPromotion: %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", promoStart.Add(-time.Second), false},
		{"exactly at start", promoStart, true},
		{"inside window", promoStart.Add(24 * time.Hour), true},
		{"exactly at end", promoEnd, true},
		{"after window", promoEnd.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.IsActive(tt.at); got != tt.want {
				t.Fatalf("IsActive(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}

	t.Run("non-UTC instants normalized before comparison", func(t *testing.T) {
		loc := time.FixedZone("UTC+5", 5*60*60)
		if !p.IsActive(promoStart.In(loc)) {
			t.Fatal("expected start instant to be active regardless of zone")
		}
	})
}

func TestPromotion_Updates(t *testing.T) {
	newPromo := func(t *testing.T) *Promotion {
		t.Helper()
		p, err := NewPromotion("Winter Sale", "season discounts", 25, promoStart, promoEnd, GenreRPG)
		if err != nil {
			t.Fatalf("NewPromotion: %v", err)
		}
		return p
	}

	t.Run("UpdateDiscount validates range", func(t *testing.T) {
		p := newPromo(t)
		if err := p.UpdateDiscount(50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.UpdateDiscount(0); err == nil {
			t.Fatal("expected an error")
		}
		if p.DiscountPercent != 50 {
			t.Fatal("failed update must not mutate")
		}
	})

	t.Run("UpdateDates validates ordering and normalizes", func(t *testing.T) {
		p := newPromo(t)
		loc := time.FixedZone("UTC-3", -3*60*60)
		if err := p.UpdateDates(promoStart.Add(time.Hour).In(loc), promoEnd.In(loc)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.StartDate.Location() != time.UTC {
			t.Fatal("expected UTC start date")
		}
		if err := p.UpdateDates(promoEnd, promoStart); err == nil {
			t.Fatal("expected an error for inverted window")
		}
	})

	t.Run("UpdateGenre rejects unknown genres", func(t *testing.T) {
		p := newPromo(t)
		if err := p.UpdateGenre(GenreSports); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.UpdateGenre(Genre("Puzzle")); err == nil {
			t.Fatal("expected an error")
		}
		if p.Genre != GenreSports {
			t.Fatal("failed update must not mutate")
		}
	})

	t.Run("UpdateDetails validates emptiness", func(t *testing.T) {
		p := newPromo(t)
		if err := p.UpdateDetails("Spring Sale", "new copy"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := p.UpdateDetails("", "copy"); err == nil {
			t.Fatal("expected an error")
		}
		if p.Title != "Spring Sale" {
			t.Fatal("failed update must not mutate")
		}
	})
}
