package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
	"github.com/ghuser/gamestore/services/catalog/domain/repositories"
	domainservices "github.com/ghuser/gamestore/services/catalog/domain/services"
)

// PromotionService orchestrates promotion lifecycle operations.
type PromotionService struct {
	repo repositories.PromotionRepository
}

// NewPromotionService returns a PromotionService backed by the given repository.
func NewPromotionService(repo repositories.PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo}
}

// Create validates and persists a Promotion.
func (s *PromotionService) Create(ctx context.Context, title, description string, discountPercent float64, startDate, endDate time.Time, genre models.Genre) (*models.Promotion, error) {
	if err := domainservices.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}

	promo, err := models.NewPromotion(title, description, discountPercent, startDate, endDate, genre)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}

	// Early duplicate check; the unique index on title is the backstop.
	if _, err := s.repo.GetByTitle(ctx, title); err == nil {
		return nil, fmt.Errorf("%w: title %q", catalogdomain.ErrPromotionAlreadyExists, title)
	} else if !errors.Is(err, catalogdomain.ErrPromotionNotFound) {
		return nil, fmt.Errorf("check title: %w", err)
	}

	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	return promo, nil
}

// GetByID loads a single promotion.
func (s *PromotionService) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	promo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}
	return promo, nil
}

// Active returns the promotions whose window contains the current instant.
func (s *PromotionService) Active(ctx context.Context) ([]*models.Promotion, error) {
	promos, err := s.repo.Active(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active promotions: %w", err)
	}
	return promos, nil
}

// Update re-validates and persists changes to every mutable promotion field.
func (s *PromotionService) Update(ctx context.Context, id uuid.UUID, title, description string, discountPercent float64, startDate, endDate time.Time, genre models.Genre) (*models.Promotion, error) {
	if err := domainservices.ValidateTitle(title); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}

	promo, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get promotion: %w", err)
	}

	if err := promo.UpdateDetails(title, description); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}
	if err := promo.UpdateDiscount(discountPercent); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}
	if err := promo.UpdateDates(startDate, endDate); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}
	if err := promo.UpdateGenre(genre); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidPromotion, err)
	}

	if err := s.repo.Update(ctx, promo); err != nil {
		return nil, fmt.Errorf("update promotion: %w", err)
	}

	return promo, nil
}

// Delete removes a promotion.
func (s *PromotionService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	return nil
}
