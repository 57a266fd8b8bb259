package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

// UpdatePromotionRequest is the request body for PUT /promotions/{id}.
type UpdatePromotionRequest struct {
	Title           string    `json:"title"            validate:"required,min=1,max=255"`
	Description     string    `json:"description"      validate:"required,min=1"`
	DiscountPercent float64   `json:"discount_percent" validate:"gt=0,lte=100"`
	StartDate       time.Time `json:"start_date"       validate:"required"`
	EndDate         time.Time `json:"end_date"         validate:"required"`
	Genre           string    `json:"genre"            validate:"required,genre"`
} // @name UpdatePromotionRequest

// PutPromotionHandler handles PUT /promotions/{id} requests.
type PutPromotionHandler struct {
	svc *appsvcs.Services
}

// NewPutPromotionHandler returns a PutPromotionHandler backed by the given services.
func NewPutPromotionHandler(svc *appsvcs.Services) *PutPromotionHandler {
	return &PutPromotionHandler{svc: svc}
}

// Execute replaces a promotion's mutable fields.
//
//	@Summary		Update promotion
//	@Tags			promotions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Promotion ID"
//	@Param			request	body		UpdatePromotionRequest	true	"Promotion update request"
//	@Success		200		{object}	PromotionResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/promotions/{id} [put]
func (h *PutPromotionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid promotion id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdatePromotionRequest](w, r)
	if !ok {
		return
	}

	promo, err := h.svc.Promotion.Update(r.Context(), id, req.Title, req.Description,
		req.DiscountPercent, req.StartDate, req.EndDate, models.Genre(req.Genre))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newPromotionResponse(promo))
}
