package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const principalKey contextKey = "principal"

// RoleAdmin is the privileged role string recognized by authorization checks.
// Role is otherwise an open string ("User", "Moderator", ...).
const RoleAdmin = "Admin"

// ErrUnauthenticated is returned when no Principal exists in the request
// context. Handlers should return 401 when this error occurs.
var ErrUnauthenticated = errors.New("no authenticated principal in context")

// Principal identifies the authenticated caller of a request.
type Principal struct {
	Email string
	Role  string
}

// IsAdmin reports whether the principal holds the privileged role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// PrincipalFromCtx extracts the authenticated principal from the request
// context. Returns ErrUnauthenticated for anonymous requests.
func PrincipalFromCtx(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey).(Principal)
	if !ok || p.Email == "" {
		return Principal{}, ErrUnauthenticated
	}
	return p, nil
}

// WithPrincipal returns a new context with the given principal attached.
// Used by the authentication middleware after validating a token or session.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}
