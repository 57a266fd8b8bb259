package auth

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/ghuser/gamestore/pkg/httpx"
	"github.com/ghuser/gamestore/pkg/logger"
)

const (
	sessionName     = "gamestore_session"
	sessionEmailKey = "email"
	sessionRoleKey  = "role"
)

// RequireAuth is a chi middleware that authenticates requests. It accepts a
// bearer token in the Authorization header first and falls back to the
// session cookie set at login. The resolved principal is injected into the
// request context. Returns 401 Unauthorized when neither is valid.
//
// After this middleware, handlers can safely call auth.PrincipalFromCtx(r.Context()).
func RequireAuth(tokens *TokenIssuer, store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if bearer := bearerToken(r); bearer != "" {
				claims, err := tokens.ParseToken(bearer)
				if err != nil {
					log.WarnContext(r.Context(), "invalid bearer token", "error", err)
					httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				ctx := WithPrincipal(r.Context(), Principal{Email: claims.Subject, Role: claims.Role})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			email, _ := session.Values[sessionEmailKey].(string)
			role, _ := session.Values[sessionRoleKey].(string)
			if email == "" || role == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{Email: email, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin is a chi middleware that rejects non-admin principals with 403.
// Must be mounted after RequireAuth.
func RequireAdmin(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, err := PrincipalFromCtx(r.Context())
			if err != nil {
				httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if !p.IsAdmin() {
				log.WarnContext(r.Context(), "non-admin access denied", "email", p.Email, "role", p.Role)
				httpx.JSONError(w, http.StatusForbidden, "admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EstablishSession writes the login session cookie carrying the principal.
// Called by the login handler alongside token issuance so browser clients can
// authenticate without storing the JWT.
func EstablishSession(w http.ResponseWriter, r *http.Request, store sessions.Store, p Principal) error {
	session, err := store.Get(r, sessionName)
	if err != nil {
		// Tampered or stale cookie: fall through with the fresh session
		// returned alongside the error.
		if session == nil {
			return err
		}
	}
	session.Values[sessionEmailKey] = p.Email
	session.Values[sessionRoleKey] = p.Role
	return session.Save(r, w)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}
