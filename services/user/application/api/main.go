package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/auth"
	"github.com/ghuser/gamestore/services/user/application/handlers"
	appsvcs "github.com/ghuser/gamestore/services/user/application/services"
)

// UserRoutes registers account endpoints on the provided chi router.
// Registration and login are public; everything else needs a principal,
// and role changes, admin creation, and deletion need the Admin role.
func UserRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	requireAuth := auth.RequireAuth(a.Tokens, a.SessionStore, a.Logger)
	requireAdmin := auth.RequireAdmin(a.Logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewLoginHandler(svcs, a.SessionStore, a.Logger).Execute)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", handlers.NewGetMeHandler(svcs).Execute)
			r.Put("/me", handlers.NewPutProfileHandler(svcs).Execute)
			r.Put("/{id}/role", handlers.NewPutRoleHandler(svcs).Execute)
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth, requireAdmin)
			r.Post("/register-admin", handlers.NewRegisterAdminHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteUserHandler(svcs).Execute)
		})
	})
}
