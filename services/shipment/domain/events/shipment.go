package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// Watermill topics for the shipment bounded context.
const (
	TopicShipmentCreated       = "shipment.created"
	TopicShipmentStatusChanged = "shipment.status_changed"
)

// ShipmentCreatedEvent is published after a new Shipment is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicShipmentCreated).
type ShipmentCreatedEvent struct {
	EventID        uuid.UUID     `json:"event_id"` // Unique publish-time identifier for deduplication
	Version        int           `json:"version"`  // Schema version; increment on breaking changes
	ShipmentID     uuid.UUID     `json:"shipment_id"`
	UserID         uuid.UUID     `json:"user_id"`
	TrackingNumber string        `json:"tracking_number"`
	Status         models.Status `json:"status"`
	OccurredAt     time.Time     `json:"occurred_at"`
}

// ShipmentStatusChangedEvent is published when an update moves a shipment
// along the status graph.
type ShipmentStatusChangedEvent struct {
	EventID        uuid.UUID     `json:"event_id"`
	Version        int           `json:"version"`
	ShipmentID     uuid.UUID     `json:"shipment_id"`
	UserID         uuid.UUID     `json:"user_id"`
	TrackingNumber string        `json:"tracking_number"`
	From           models.Status `json:"from"`
	To             models.Status `json:"to"`
	OccurredAt     time.Time     `json:"occurred_at"`
}
