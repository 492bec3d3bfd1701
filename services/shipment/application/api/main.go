package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/shipstream/pkg/app"
	"github.com/ghuser/shipstream/pkg/auth"
	"github.com/ghuser/shipstream/services/shipment/application/handlers"
	appsvcs "github.com/ghuser/shipstream/services/shipment/application/services"
)

// ShipmentRoutes registers shipment endpoints on the provided chi router.
// Every route requires an authenticated session. /stats is registered before
// /{id} so chi does not swallow it as an ID.
func ShipmentRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
		r.Route("/shipments", func(r chi.Router) {
			r.Get("/", handlers.NewGetShipmentsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostShipmentHandler(svcs).Execute)
			r.Get("/stats", handlers.NewGetStatsHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetShipmentHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutShipmentHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteShipmentHandler(svcs).Execute)
			r.Get("/{id}/summary", handlers.NewGetSummaryHandler(svcs).Execute)
		})
	})
}
