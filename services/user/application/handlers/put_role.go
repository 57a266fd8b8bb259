package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// ChangeRoleRequest is the request body for PUT /users/{id}/role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,min=1,max=64" example:"Admin"`
} // @name ChangeRoleRequest

// PutRoleHandler handles PUT /users/{id}/role requests.
type PutRoleHandler struct {
	svc *appsvcs.Services
}

// NewPutRoleHandler returns a PutRoleHandler backed by the given services.
func NewPutRoleHandler(svc *appsvcs.Services) *PutRoleHandler {
	return &PutRoleHandler{svc: svc}
}

// Execute assigns a new role to the target account. The authenticated
// principal is resolved to a stored account before the authorization check
// so revoked admins cannot use a stale token.
//
//	@Summary		Change role
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Target user ID"
//	@Param			request	body		ChangeRoleRequest	true	"Role change request"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/{id}/role [put]
func (h *PutRoleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	p, err := auth.PrincipalFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ChangeRoleRequest](w, r)
	if !ok {
		return
	}

	performer, err := h.svc.Account.GetByEmail(r.Context(), p.Email)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	target, err := h.svc.Account.ChangeRole(r.Context(), performer.ID, targetID, req.Role)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newUserResponse(target))
}
