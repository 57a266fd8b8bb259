package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/gamestore/pkg/errhttp"
	"github.com/ghuser/gamestore/pkg/httpx"
	pkgvalidator "github.com/ghuser/gamestore/pkg/validator"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
	"github.com/ghuser/gamestore/services/user/domain/models"
)

// RegisterRequest is the request body for POST /users/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=1,max=255" example:"Ana Souza"`
	Email    string `json:"email"    validate:"required,email"         example:"ana@example.com"`
	Password string `json:"password" validate:"required,min=8"         example:"correct-horse"`
} // @name RegisterRequest

// UserResponse is the JSON shape for an account.
type UserResponse struct {
	ID    uuid.UUID `json:"id"    example:"123e4567-e89b-12d3-a456-426614174000"`
	Name  string    `json:"name"  example:"Ana Souza"`
	Email string    `json:"email" example:"ana@example.com"`
	Role  string    `json:"role"  example:"User"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"email already registered"`
} // @name ErrorResponse

func newUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// RegisterHandler handles POST /users/register requests.
type RegisterHandler struct {
	svc   *appsvcs.Services
	admin bool
}

// NewRegisterHandler returns a handler creating regular accounts.
func NewRegisterHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc}
}

// NewRegisterAdminHandler returns a handler creating Admin accounts.
// Mount it behind the admin guard.
func NewRegisterAdminHandler(svc *appsvcs.Services) *RegisterHandler {
	return &RegisterHandler{svc: svc, admin: true}
}

// Execute registers a new account.
//
//	@Summary		Register account
//	@Description	Creates an account; emails are unique
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/users/register [post]
func (h *RegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	register := h.svc.Account.Register
	if h.admin {
		register = h.svc.Account.RegisterAdmin
	}

	user, err := register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newUserResponse(user))
}
