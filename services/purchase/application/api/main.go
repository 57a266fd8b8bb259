package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/services/purchase/application/handlers"
	appsvcs "github.com/ghuser/gamestore/services/purchase/application/services"
	usersvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// PurchaseRoutes registers purchase endpoints on the provided chi router.
// Every purchase needs an authenticated principal.
func PurchaseRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	users := usersvcs.New(a)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.Tokens, a.SessionStore, a.Logger))
		r.Post("/purchases", handlers.NewPostPurchaseHandler(svcs, users).Execute)
	})
}
