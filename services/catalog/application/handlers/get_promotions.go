package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
)

// GetActivePromotionsHandler handles GET /promotions/active requests.
type GetActivePromotionsHandler struct {
	svc *appsvcs.Services
}

// NewGetActivePromotionsHandler returns a GetActivePromotionsHandler backed by the given services.
func NewGetActivePromotionsHandler(svc *appsvcs.Services) *GetActivePromotionsHandler {
	return &GetActivePromotionsHandler{svc: svc}
}

// Execute lists the promotions active right now.
//
//	@Summary		List active promotions
//	@Description	Returns promotions whose validity window contains the current instant
//	@Tags			promotions
//	@Produce		json
//	@Success		200	{array}		PromotionResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/promotions/active [get]
func (h *GetActivePromotionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	promos, err := h.svc.Promotion.Active(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	out := make([]PromotionResponse, 0, len(promos))
	for _, p := range promos {
		out = append(out, newPromotionResponse(p))
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetPromotionHandler handles GET /promotions/{id} requests.
type GetPromotionHandler struct {
	svc *appsvcs.Services
}

// NewGetPromotionHandler returns a GetPromotionHandler backed by the given services.
func NewGetPromotionHandler(svc *appsvcs.Services) *GetPromotionHandler {
	return &GetPromotionHandler{svc: svc}
}

// Execute fetches a promotion by id.
//
//	@Summary		Get promotion
//	@Tags			promotions
//	@Produce		json
//	@Param			id	path		string	true	"Promotion ID"
//	@Success		200	{object}	PromotionResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/promotions/{id} [get]
func (h *GetPromotionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid promotion id")
		return
	}

	promo, err := h.svc.Promotion.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newPromotionResponse(promo))
}
