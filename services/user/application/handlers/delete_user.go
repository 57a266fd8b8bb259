package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// DeleteUserHandler handles DELETE /users/{id} requests.
type DeleteUserHandler struct {
	svc *appsvcs.Services
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc}
}

// Execute removes an account. Ownership records cascade.
//
//	@Summary		Delete account
//	@Tags			users
//	@Param			id	path	string	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/{id} [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.Account.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
