package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shipstream/pkg/app"
	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/services/account/application/handlers"
	appsvcs "github.com/ghuser/shipstream/services/account/application/services"
)

// AccountRoutes registers auth endpoints on the provided chi router.
// register, login, and logout are public; me requires a session.
func AccountRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewPostRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewPostLoginHandler(svcs, a.SessionStore, a.Logger).Execute)
		r.Post("/logout", handlers.NewPostLogoutHandler(a.SessionStore, a.Logger).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Get("/me", handlers.NewGetMeHandler(svcs).Execute)
		})
	})
}
