package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

type fakePromotionRepo struct {
	byID map[uuid.UUID]*models.Promotion
}

func newFakePromotionRepo() *fakePromotionRepo {
	return &fakePromotionRepo{byID: make(map[uuid.UUID]*models.Promotion)}
}

func (f *fakePromotionRepo) Create(ctx context.Context, p *models.Promotion) error {
	for _, existing := range f.byID {
		if existing.Title == p.Title {
			return catalogdomain.ErrPromotionAlreadyExists
		}
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePromotionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, catalogdomain.ErrPromotionNotFound
	}
	return p, nil
}

func (f *fakePromotionRepo) GetByTitle(ctx context.Context, title string) (*models.Promotion, error) {
	for _, p := range f.byID {
		if p.Title == title {
			return p, nil
		}
	}
	return nil, catalogdomain.ErrPromotionNotFound
}

func (f *fakePromotionRepo) Active(ctx context.Context, now time.Time) ([]*models.Promotion, error) {
	var out []*models.Promotion
	for _, p := range f.byID {
		if p.IsActive(now) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePromotionRepo) Update(ctx context.Context, p *models.Promotion) error {
	if _, ok := f.byID[p.ID]; !ok {
		return catalogdomain.ErrPromotionNotFound
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakePromotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return catalogdomain.ErrPromotionNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestPromotionService(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("create and list active", func(t *testing.T) {
		repo := newFakePromotionRepo()
		svc := NewPromotionService(repo)

		if _, err := svc.Create(ctx, "Live Sale", "on now", 20, now.Add(-time.Hour), now.Add(time.Hour), models.GenreAction); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := svc.Create(ctx, "Future Sale", "not yet", 30, now.Add(24*time.Hour), now.Add(48*time.Hour), models.GenreRPG); err != nil {
			t.Fatalf("Create: %v", err)
		}

		active, err := svc.Active(ctx)
		if err != nil {
			t.Fatalf("Active: %v", err)
		}
		if len(active) != 1 || active[0].Title != "Live Sale" {
			t.Errorf("expected only the live promotion, got %d", len(active))
		}
	})

	t.Run("duplicate title conflicts", func(t *testing.T) {
		repo := newFakePromotionRepo()
		svc := NewPromotionService(repo)

		if _, err := svc.Create(ctx, "Sale", "first", 20, now.Add(-time.Hour), now.Add(time.Hour), models.GenreAction); err != nil {
			t.Fatalf("Create: %v", err)
		}
		_, err := svc.Create(ctx, "Sale", "second", 30, now.Add(-time.Hour), now.Add(time.Hour), models.GenreRPG)
		if !errors.Is(err, catalogdomain.ErrPromotionAlreadyExists) {
			t.Fatalf("expected ErrPromotionAlreadyExists, got %v", err)
		}
	})

	t.Run("invalid discount rejected", func(t *testing.T) {
		svc := NewPromotionService(newFakePromotionRepo())
		_, err := svc.Create(ctx, "Bad Sale", "nope", 0, now.Add(-time.Hour), now.Add(time.Hour), models.GenreAction)
		if !errors.Is(err, catalogdomain.ErrInvalidPromotion) {
			t.Fatalf("expected ErrInvalidPromotion, got %v", err)
		}
	})

	t.Run("update re-validates window", func(t *testing.T) {
		repo := newFakePromotionRepo()
		svc := NewPromotionService(repo)

		p, err := svc.Create(ctx, "Sale", "desc", 20, now.Add(-time.Hour), now.Add(time.Hour), models.GenreAction)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		_, err = svc.Update(ctx, p.ID, "Sale", "desc", 20, now.Add(time.Hour), now.Add(-time.Hour), models.GenreAction)
		if !errors.Is(err, catalogdomain.ErrInvalidPromotion) {
			t.Fatalf("expected ErrInvalidPromotion for inverted window, got %v", err)
		}

		updated, err := svc.Update(ctx, p.ID, "Renamed Sale", "desc", 45, now.Add(-time.Hour), now.Add(time.Hour), models.GenreRPG)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Title != "Renamed Sale" || updated.DiscountPercent != 45 || updated.Genre != models.GenreRPG {
			t.Errorf("unexpected updated promotion: %+v", updated)
		}
	})

	t.Run("delete unknown promotion", func(t *testing.T) {
		svc := NewPromotionService(newFakePromotionRepo())
		if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, catalogdomain.ErrPromotionNotFound) {
			t.Fatalf("expected ErrPromotionNotFound, got %v", err)
		}
	})
}
