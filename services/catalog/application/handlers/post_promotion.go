package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

// CreatePromotionRequest is the request body for POST /promotions.
type CreatePromotionRequest struct {
	Title           string    `json:"title"            validate:"required,min=1,max=255" example:"Winter Sale"`
	Description     string    `json:"description"      validate:"required,min=1"         example:"Season discounts"`
	DiscountPercent float64   `json:"discount_percent" validate:"gt=0,lte=100"           example:"25"`
	StartDate       time.Time `json:"start_date"       validate:"required"               example:"2024-12-01T00:00:00Z"`
	EndDate         time.Time `json:"end_date"         validate:"required"               example:"2024-12-31T23:59:59Z"`
	Genre           string    `json:"genre"            validate:"required,genre"         example:"RPG"`
} // @name CreatePromotionRequest

// PromotionResponse is the JSON shape for a single promotion.
type PromotionResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent float64   `json:"discount_percent"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Genre           string    `json:"genre"`
} // @name PromotionResponse

func newPromotionResponse(p *models.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		DiscountPercent: p.DiscountPercent,
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		Genre:           p.Genre.String(),
	}
}

// PostPromotionHandler handles POST /promotions requests.
type PostPromotionHandler struct {
	svc *appsvcs.Services
}

// NewPostPromotionHandler returns a PostPromotionHandler backed by the given services.
func NewPostPromotionHandler(svc *appsvcs.Services) *PostPromotionHandler {
	return &PostPromotionHandler{svc: svc}
}

// Execute creates a new promotion.
//
//	@Summary		Create promotion
//	@Description	Adds a time-bounded genre discount. Titles are unique.
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreatePromotionRequest	true	"Promotion creation request"
//	@Success		201		{object}	PromotionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/promotions [post]
func (h *PostPromotionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreatePromotionRequest](w, r)
	if !ok {
		return
	}

	promo, err := h.svc.Promotion.Create(r.Context(), req.Title, req.Description,
		req.DiscountPercent, req.StartDate, req.EndDate, models.Genre(req.Genre))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newPromotionResponse(promo))
}
