package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/purchase/application/services"
	usersvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// PurchaseRequest is the request body for POST /purchases.
type PurchaseRequest struct {
	GameIDs []uuid.UUID `json:"game_ids" validate:"required,min=1,dive,required" example:"123e4567-e89b-12d3-a456-426614174000"`
} // @name PurchaseRequest

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"authentication required"`
} // @name ErrorResponse

// PostPurchaseHandler handles POST /purchases requests.
type PostPurchaseHandler struct {
	svc   *appsvcs.Services
	users *usersvcs.Services
}

// NewPostPurchaseHandler returns a PostPurchaseHandler. The user services
// resolve the authenticated principal to a buyer id.
func NewPostPurchaseHandler(svc *appsvcs.Services, users *usersvcs.Services) *PostPurchaseHandler {
	return &PostPurchaseHandler{svc: svc, users: users}
}

// Execute purchases games for the authenticated account. Business
// rejections come back as 200 responses with success=false so clients can
// show the message as-is; only infrastructure failures return 5xx.
//
//	@Summary		Purchase games
//	@Description	Prices the cart under active promotions and adds the games to the buyer's library
//	@Tags			purchases
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PurchaseRequest	true	"Purchase request"
//	@Success		200		{object}	services.Result
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/purchases [post]
func (h *PostPurchaseHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[PurchaseRequest](w, r)
	if !ok {
		return
	}

	buyer, err := h.users.Account.GetByEmail(r.Context(), p.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	result, err := h.svc.Purchase.Purchase(r.Context(), buyer.ID, req.GameIDs)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, result)
}
