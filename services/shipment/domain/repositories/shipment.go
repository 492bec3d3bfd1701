package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// ShipmentRepository is the persistence interface for the Shipment aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Search, filtering, sorting, and pagination are NOT pushed into the
// repository: FindByUserID returns the full owner-scoped snapshot and the
// query engine computes the result deterministically over it, so the engine
// behaves identically against Postgres and the in-memory fake.
type ShipmentRepository interface {
	// Save persists a new shipment. Returns ErrTrackingNumberExists when
	// the tracking number is already taken.
	Save(ctx context.Context, s *models.Shipment) error

	// GetByID retrieves a shipment by ID scoped to the owning user.
	// Returns ErrShipmentNotFound if absent or owned by someone else.
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Shipment, error)

	// FindByUserID retrieves the full collection owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Shipment, error)

	// Update persists changes to an existing shipment. prev is the status
	// before the update; implementations publish a status-changed event
	// when it differs from s.Status.
	Update(ctx context.Context, s *models.Shipment, prev models.Status) error

	// Delete removes a shipment by ID scoped to the owning user.
	// Returns ErrShipmentNotFound when nothing was deleted.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
