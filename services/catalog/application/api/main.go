package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/gamestore/services/catalog/application/services"
)

// CatalogRoutes registers game and promotion endpoints on the provided chi
// router. Reads are public; mutations require an Admin principal.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	requireAuth := auth.RequireAuth(a.Tokens, a.SessionStore, a.Logger)
	requireAdmin := auth.RequireAdmin(a.Logger)

	r.Route("/games", func(r chi.Router) {
		r.Get("/{id}", handlers.NewGetGameHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/", handlers.NewPostGameHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutGameHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteGameHandler(svcs).Execute)
		})
	})

	r.Route("/promotions", func(r chi.Router) {
		r.Get("/active", handlers.NewGetActivePromotionsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetPromotionHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/", handlers.NewPostPromotionHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutPromotionHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeletePromotionHandler(svcs).Execute)
		})
	})
}
