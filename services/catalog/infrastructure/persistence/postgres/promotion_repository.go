package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/gamestore/pkg/database"
	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

// PromotionRepository implements repositories.PromotionRepository against PostgreSQL.
type PromotionRepository struct {
	db *database.Database
}

// NewPromotionRepository returns a PromotionRepository backed by the given pool.
func NewPromotionRepository(db *database.Database) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// Create persists a new Promotion. Returns ErrPromotionAlreadyExists on title
// uniqueness violations.
func (r *PromotionRepository) Create(ctx context.Context, promotion *models.Promotion) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO promotions (id, title, description, discount_percent, start_date, end_date, genre)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, promotion.ID, promotion.Title, promotion.Description, promotion.DiscountPercent,
		promotion.StartDate, promotion.EndDate, promotion.Genre.String())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return catalogdomain.ErrPromotionAlreadyExists
		}
		return fmt.Errorf("insert promotion: %w", err)
	}
	return nil
}

// GetByID retrieves a Promotion by id. Returns ErrPromotionNotFound if absent.
func (r *PromotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Promotion, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, title, description, discount_percent, start_date, end_date, genre
		FROM promotions WHERE id = $1
	`, id)
	return scanPromotion(row)
}

// GetByTitle retrieves a Promotion by its unique title.
func (r *PromotionRepository) GetByTitle(ctx context.Context, title string) (*models.Promotion, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, title, description, discount_percent, start_date, end_date, genre
		FROM promotions WHERE title = $1
	`, title)
	return scanPromotion(row)
}

// Active returns promotions whose closed window contains now. The window
// filter runs in SQL so callers only ever see currently-valid promotions.
func (r *PromotionRepository) Active(ctx context.Context, now time.Time) ([]*models.Promotion, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT id, title, description, discount_percent, start_date, end_date, genre
		FROM promotions
		WHERE start_date <= $1 AND end_date >= $1
		ORDER BY discount_percent DESC, id
	`, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("query active promotions: %w", err)
	}
	defer rows.Close()

	var promotions []*models.Promotion
	for rows.Next() {
		p, err := scanPromotion(rows)
		if err != nil {
			return nil, err
		}
		promotions = append(promotions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate promotions: %w", err)
	}
	return promotions, nil
}

// Update persists changes to an existing Promotion.
func (r *PromotionRepository) Update(ctx context.Context, promotion *models.Promotion) error {
	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE promotions
		SET title = $2, description = $3, discount_percent = $4, start_date = $5, end_date = $6, genre = $7
		WHERE id = $1
	`, promotion.ID, promotion.Title, promotion.Description, promotion.DiscountPercent,
		promotion.StartDate, promotion.EndDate, promotion.Genre.String())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return catalogdomain.ErrPromotionAlreadyExists
		}
		return fmt.Errorf("update promotion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrPromotionNotFound
	}
	return nil
}

// Delete removes a promotion.
func (r *PromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalogdomain.ErrPromotionNotFound
	}
	return nil
}

// scanPromotion maps one promotions row to a rehydrated domain Promotion.
func scanPromotion(row rowScanner) (*models.Promotion, error) {
	var (
		id              uuid.UUID
		title           string
		description     string
		discountPercent float64
		startDate       time.Time
		endDate         time.Time
		genre           string
	)
	if err := row.Scan(&id, &title, &description, &discountPercent, &startDate, &endDate, &genre); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrPromotionNotFound
		}
		return nil, fmt.Errorf("scan promotion: %w", err)
	}
	p, err := models.RehydratePromotion(id, title, description, discountPercent, startDate, endDate, models.Genre(genre))
	if err != nil {
		return nil, fmt.Errorf("rehydrate promotion %s: %w", id, err)
	}
	return p, nil
}
