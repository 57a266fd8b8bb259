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

// CreateGameRequest is the request body for POST /games.
type CreateGameRequest struct {
	Title       string  `json:"title"       validate:"required,min=1,max=255" example:"Starfall Tactics"`
	Description string  `json:"description" validate:"required,min=1"         example:"Turn-based space battles"`
	Genre       string  `json:"genre"       validate:"required,genre"         example:"Strategy"`
	Price       float64 `json:"price"       validate:"gte=0"                  example:"59.99"`
} // @name CreateGameRequest

// GameResponse is the JSON shape for a single game.
type GameResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Title       string    `json:"title"       example:"Starfall Tactics"`
	Description string    `json:"description" example:"Turn-based space battles"`
	Genre       string    `json:"genre"       example:"Strategy"`
	Price       float64   `json:"price"       example:"59.99"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
} // @name GameResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"title must not be empty"`
} // @name ErrorResponse

func newGameResponse(g *models.Game) GameResponse {
	return GameResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Genre:       g.Genre.String(),
		Price:       g.Price,
		CreatedAt:   g.CreatedAt,
	}
}

// PostGameHandler handles POST /games requests.
type PostGameHandler struct {
	svc *appsvcs.Services
}

// NewPostGameHandler returns a PostGameHandler backed by the given services.
func NewPostGameHandler(svc *appsvcs.Services) *PostGameHandler {
	return &PostGameHandler{svc: svc}
}

// Execute creates a new game.
//
//	@Summary		Create game
//	@Description	Adds a game to the catalog. Titles are unique.
//	@Tags			games
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateGameRequest	true	"Game creation request"
//	@Success		201		{object}	GameResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/games [post]
func (h *PostGameHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateGameRequest](w, r)
	if !ok {
		return
	}

	game, err := h.svc.Game.Create(r.Context(), req.Title, req.Description, models.Genre(req.Genre), req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newGameResponse(game))
}
