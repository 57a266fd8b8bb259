package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// LibraryEntryResponse is one owned game in the account's library.
type LibraryEntryResponse struct {
	GameID      uuid.UUID `json:"game_id"`
	PurchasedAt time.Time `json:"purchased_at"`
} // @name LibraryEntryResponse

// MeResponse is the authenticated account plus its library.
type MeResponse struct {
	UserResponse
	Library []LibraryEntryResponse `json:"library"`
} // @name MeResponse

// GetMeHandler handles GET /users/me requests.
type GetMeHandler struct {
	svc *appsvcs.Services
}

// NewGetMeHandler returns a GetMeHandler backed by the given services.
func NewGetMeHandler(svc *appsvcs.Services) *GetMeHandler {
	return &GetMeHandler{svc: svc}
}

// Execute returns the authenticated account and its library.
//
//	@Summary		Current account
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	MeResponse
//	@Failure		401	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/me [get]
func (h *GetMeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	user, err := h.svc.Account.GetByEmail(r.Context(), p.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	library := make([]LibraryEntryResponse, 0, len(user.Library()))
	for _, entry := range user.Library() {
		library = append(library, LibraryEntryResponse{
			GameID:      entry.GameID,
			PurchasedAt: entry.PurchasedAt,
		})
	}

	httpx.JSON(w, http.StatusOK, MeResponse{
		UserResponse: newUserResponse(user),
		Library:      library,
	})
}
