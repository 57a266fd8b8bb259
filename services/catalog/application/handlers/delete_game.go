package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
)

// DeleteGameHandler handles DELETE /games/{id} requests.
type DeleteGameHandler struct {
	svc *appsvcs.Services
}

// NewDeleteGameHandler returns a DeleteGameHandler backed by the given services.
func NewDeleteGameHandler(svc *appsvcs.Services) *DeleteGameHandler {
	return &DeleteGameHandler{svc: svc}
}

// Execute removes a game from the catalog.
//
//	@Summary		Delete game
//	@Description	Removes a game; ownership records cascade
//	@Tags			games
//	@Param			id	path	string	true	"Game ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/games/{id} [delete]
func (h *DeleteGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	if err := h.svc.Game.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
