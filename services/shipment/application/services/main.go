package services

import (
	"github.com/ghuser/shipstream/pkg/app"
	"github.com/ghuser/shipstream/pkg/cache"
	"github.com/ghuser/shipstream/services/shipment/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Shipment *ShipmentService
}

// New wires all shipment application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewShipmentRepository(a.Db, a.EventBus)
	shipmentCache := cache.NewShipmentCache(a.Redis)
	return &Services{
		Shipment: NewShipmentService(repo, shipmentCache, a.AI),
	}
}
