package handlers

import (
	"net/http"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// UpdateProfileRequest is the request body for PUT /users/me.
type UpdateProfileRequest struct {
	Name  string `json:"name"  validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
} // @name UpdateProfileRequest

// PutProfileHandler handles PUT /users/me requests.
type PutProfileHandler struct {
	svc *appsvcs.Services
}

// NewPutProfileHandler returns a PutProfileHandler backed by the given services.
func NewPutProfileHandler(svc *appsvcs.Services) *PutProfileHandler {
	return &PutProfileHandler{svc: svc}
}

// Execute updates the authenticated account's name and email.
//
//	@Summary		Update profile
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateProfileRequest	true	"Profile update request"
//	@Success		200		{object}	UserResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/me [put]
func (h *PutProfileHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateProfileRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Account.GetByEmail(r.Context(), p.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	updated, err := h.svc.Account.UpdateProfile(r.Context(), user.ID, req.Name, req.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(updated))
}
