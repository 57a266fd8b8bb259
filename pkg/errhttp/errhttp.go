// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/pkg/httpx"
	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, catalogdomain.ErrGameNotFound),
		errors.Is(err, catalogdomain.ErrPromotionNotFound),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, catalogdomain.ErrGameAlreadyExists),
		errors.Is(err, catalogdomain.ErrPromotionAlreadyExists),
		errors.Is(err, userdomain.ErrEmailAlreadyRegistered),
		errors.Is(err, userdomain.ErrGameAlreadyOwned):
		return http.StatusConflict // 409
	case errors.Is(err, catalogdomain.ErrInvalidGame),
		errors.Is(err, catalogdomain.ErrInvalidPromotion),
		errors.Is(err, userdomain.ErrInvalidUser):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, userdomain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized // 401
	case errors.Is(err, userdomain.ErrNotAuthorized):
		return http.StatusForbidden // 403
	default:
		return http.StatusInternalServerError // 500
	}
}
