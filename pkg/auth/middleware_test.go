package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"

	"github.com/ghuser/gamestore/pkg/config"
	"github.com/ghuser/gamestore/pkg/logger"
)

// newTestStore returns a gorilla CookieStore (no Redis required) for unit tests.
// In production the RedisStore is used; the sessions.Store interface is identical.
func newTestStore() sessions.Store {
	return sessions.NewCookieStore(
		[]byte("test-auth-key-must-be-32-bytes!!"),
		[]byte("test-enc-key-must-be-32-bytes!!!"),
	)
}

// newTestLogger creates a logger that discards output.
func newTestLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func newTestIssuer() *TokenIssuer {
	return NewTokenIssuer("test-jwt-secret-must-be-32-bytes", time.Hour)
}

// requestWithSession builds an *http.Request that carries a valid session
// cookie containing the given principal.
func requestWithSession(t *testing.T, store sessions.Store, p Principal) *http.Request {
	t.Helper()

	// Write the session cookie into a recorder, then copy it to the real request.
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)

	if err := EstablishSession(w, r, store, p); err != nil {
		t.Fatalf("establish session: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestRequireAuth_ValidBearerToken(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	issuer := newTestIssuer()

	token, err := issuer.IssueToken("player@example.com", "User")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	var captured Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = PrincipalFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(issuer, store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured.Email != "player@example.com" || captured.Role != "User" {
		t.Fatalf("unexpected principal in context: %+v", captured)
	}
}

func TestRequireAuth_InvalidBearerToken(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)
	r.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	RequireAuth(newTestIssuer(), store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ExpiredBearerToken(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	expired := NewTokenIssuer("test-jwt-secret-must-be-32-bytes", -time.Minute)

	token, err := expired.IssueToken("player@example.com", "User")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	RequireAuth(newTestIssuer(), store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_ValidSessionFallback(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()
	p := Principal{Email: "player@example.com", Role: "User"}

	var captured Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = PrincipalFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	r := requestWithSession(t, store, p)
	w := httptest.NewRecorder()
	RequireAuth(newTestIssuer(), store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != p {
		t.Fatalf("expected principal %+v in context, got %+v", p, captured)
	}
}

func TestRequireAuth_MissingCredentials(t *testing.T) {
	store := newTestStore()
	log := newTestLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	r := httptest.NewRequest(http.MethodPost, "/api/purchases", nil)
	w := httptest.NewRecorder()
	RequireAuth(newTestIssuer(), store, log)(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	log := newTestLogger()

	tests := []struct {
		name       string
		principal  *Principal
		wantStatus int
	}{
		{"admin allowed", &Principal{Email: "root@example.com", Role: RoleAdmin}, http.StatusOK},
		{"user forbidden", &Principal{Email: "player@example.com", Role: "User"}, http.StatusForbidden},
		{"anonymous unauthorized", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodPut, "/api/users/role", nil)
			if tt.principal != nil {
				r = r.WithContext(WithPrincipal(r.Context(), *tt.principal))
			}
			w := httptest.NewRecorder()
			RequireAdmin(log)(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}
