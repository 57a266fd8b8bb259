package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
	"github.com/ghuser/gamestore/services/catalog/domain/models"
)

// UpdateGameRequest is the request body for PUT /games/{id}.
type UpdateGameRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=255"`
	Description string  `json:"description" validate:"required,min=1"`
	Genre       string  `json:"genre"       validate:"required,genre"`
	Price       float64 `json:"price"       validate:"gte=0"`
} // @name UpdateGameRequest

// PutGameHandler handles PUT /games/{id} requests.
type PutGameHandler struct {
	svc *appsvcs.Services
}

// NewPutGameHandler returns a PutGameHandler backed by the given services.
func NewPutGameHandler(svc *appsvcs.Services) *PutGameHandler {
	return &PutGameHandler{svc: svc}
}

// Execute replaces a game's mutable fields.
//
//	@Summary		Update game
//	@Description	Replaces title, description, genre, and price
//	@Tags			games
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Game ID"
//	@Param			request	body		UpdateGameRequest	true	"Game update request"
//	@Success		200		{object}	GameResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/games/{id} [put]
func (h *PutGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid game id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateGameRequest](w, r)
	if !ok {
		return
	}

	game, err := h.svc.Game.Update(r.Context(), id, req.Title, req.Description, models.Genre(req.Genre), req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newGameResponse(game))
}
