package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
)

// GetGameHandler handles GET /games/{id} requests.
type GetGameHandler struct {
	svc *appsvcs.Services
}

// NewGetGameHandler returns a GetGameHandler backed by the given services.
func NewGetGameHandler(svc *appsvcs.Services) *GetGameHandler {
	return &GetGameHandler{svc: svc}
}

// Execute fetches a game by id.
//
//	@Summary		Get game
//	@Description	Fetches a single game, served from cache when warm
//	@Tags			games
//	@Produce		json
//	@Param			id	path		string	true	"Game ID"
//	@Success		200	{object}	GameResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/games/{id} [get]
func (h *GetGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	game, err := h.svc.Game.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newGameResponse(game))
}
