package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/gamestore/pkg/auth"
	catalogdomain "github.com/ghuser/gamestore/services/catalog/domain"
	userdomain "github.com/ghuser/gamestore/services/user/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrGameNotFound", catalogdomain.ErrGameNotFound, http.StatusNotFound},
		{"ErrPromotionNotFound", catalogdomain.ErrPromotionNotFound, http.StatusNotFound},
		{"ErrUserNotFound", userdomain.ErrUserNotFound, http.StatusNotFound},
		{"ErrGameAlreadyExists", catalogdomain.ErrGameAlreadyExists, http.StatusConflict},
		{"ErrPromotionAlreadyExists", catalogdomain.ErrPromotionAlreadyExists, http.StatusConflict},
		{"ErrEmailAlreadyRegistered", userdomain.ErrEmailAlreadyRegistered, http.StatusConflict},
		{"ErrGameAlreadyOwned", userdomain.ErrGameAlreadyOwned, http.StatusConflict},
		{"ErrInvalidGame", catalogdomain.ErrInvalidGame, http.StatusUnprocessableEntity},
		{"ErrInvalidPromotion", catalogdomain.ErrInvalidPromotion, http.StatusUnprocessableEntity},
		{"ErrInvalidUser", userdomain.ErrInvalidUser, http.StatusUnprocessableEntity},
		{"ErrInvalidCredentials", userdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"ErrUnauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized},
		{"ErrInvalidToken", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"ErrNotAuthorized", userdomain.ErrNotAuthorized, http.StatusForbidden},
		{"wrapped ErrGameNotFound", fmt.Errorf("get game: %w", catalogdomain.ErrGameNotFound), http.StatusNotFound},
		{"wrapped ErrGameAlreadyOwned", fmt.Errorf("game %q: %w", "Some Game", userdomain.ErrGameAlreadyOwned), http.StatusConflict},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_JSONBody(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrGameNotFound)

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if _, ok := body["error"]; !ok {
		t.Fatal("response body missing 'error' key")
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, catalogdomain.ErrGameNotFound)

	ct := w.Header().Get("Content-Type")
	if ct == "" {
		t.Fatal("Content-Type header not set")
	}
}
