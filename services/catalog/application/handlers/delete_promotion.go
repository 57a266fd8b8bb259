package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
)

// DeletePromotionHandler handles DELETE /promotions/{id} requests.
type DeletePromotionHandler struct {
	svc *appsvcs.Services
}

// NewDeletePromotionHandler returns a DeletePromotionHandler backed by the given services.
func NewDeletePromotionHandler(svc *appsvcs.Services) *DeletePromotionHandler {
	return &DeletePromotionHandler{svc: svc}
}

// Execute removes a promotion.
//
//	@Summary		Delete promotion
//	@Tags			promotions
//	@Param			id	path	string	true	"Promotion ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/promotions/{id} [delete]
func (h *DeletePromotionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid promotion id")
		return
	}

	if err := h.svc.Promotion.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
