package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	"github.com/ghuser/gamestore/pkg/logger"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// LoginRequest is the request body for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"ana@example.com"`
	Password string `json:"password" validate:"required"       example:"correct-horse"`
} // @name LoginRequest

// LoginResponse carries the bearer token; the session cookie rides on the
// response headers.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
} // @name LoginResponse

// LoginHandler handles POST /users/login requests.
type LoginHandler struct {
	svc   *appsvcs.Services
	store sessions.Store
	log   logger.Logger
}

// NewLoginHandler returns a LoginHandler. store may be nil; the cookie
// session is then skipped and clients rely on the bearer token alone.
func NewLoginHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{svc: svc, store: store, log: log}
}

// Execute authenticates an account.
//
//	@Summary		Login
//	@Description	Verifies credentials, returns a bearer token, and sets a session cookie
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/users/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	token, user, err := h.svc.Account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	if h.store != nil {
		p := auth.Principal{Email: user.Email, Role: user.Role}
		if err := auth.EstablishSession(w, r, h.store, p); err != nil {
			// Bearer auth still works; log and continue.
			h.log.WarnContext(r.Context(), "failed to establish session", "error", err)
		}
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token, User: newUserResponse(user)})
}
