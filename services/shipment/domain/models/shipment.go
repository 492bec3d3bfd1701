package models

import (
	"time"

	"github.com/google/uuid"
)

// Shipment is the core aggregate for this bounded context.
//
// The derived block at the bottom is never supplied by callers; it is
// recomputed in full from the raw fields on every create and update so the
// computed values can never go stale.
type Shipment struct {
	ID     uuid.UUID
	UserID uuid.UUID // owner scope, always filter by this in queries

	TrackingNumber   TrackingNumber
	Description      string
	SenderName       string
	SenderAddress    string
	RecipientName    string
	RecipientAddress string
	Carrier          string
	Origin           string
	Destination      string

	Status         Status
	ShippingMethod ShippingMethod
	Priority       Priority

	IsPriority        bool
	IsInsured         bool
	RequiresSignature bool
	IsFragile         bool

	WeightKg      float64
	LengthCm      float64
	WidthCm       float64
	HeightCm      float64
	DistanceKm    float64
	DeclaredValue float64

	// ShippingCostOverride, when positive, replaces the computed shipping
	// cost. Zero means "use the rate table".
	ShippingCostOverride float64

	CreatedAt             time.Time
	EstimatedDeliveryDate time.Time
	ShippedAt             *time.Time
	DeliveredAt           *time.Time

	// Derived fields.
	EstimatedDeliveryDays int
	ShippingCost          float64
	InsuranceCost         float64
	TotalCost             float64
	VolumetricWeightKg    float64
	ChargeableWeightKg    float64
}

// NewShipment constructs a Shipment aggregate with generated ID, current
// timestamp, and CREATED status. Raw fields are filled in by the caller
// before the pricing engine derives the computed block.
func NewShipment(userID uuid.UUID, trackingNumber TrackingNumber) *Shipment {
	return &Shipment{
		ID:             uuid.New(),
		UserID:         userID,
		TrackingNumber: trackingNumber,
		Status:         StatusCreated,
		CreatedAt:      time.Now().UTC(),
	}
}

// ApplyStatus moves the shipment to next and stamps the transition
// timestamps: entering PICKED_UP sets ShippedAt if unset, entering DELIVERED
// sets DeliveredAt if unset. The caller must have validated the transition
// with Status.CanTransition first.
func (s *Shipment) ApplyStatus(next Status, now time.Time) {
	s.Status = next
	switch next {
	case StatusPickedUp:
		if s.ShippedAt == nil {
			t := now
			s.ShippedAt = &t
		}
	case StatusDelivered:
		if s.DeliveredAt == nil {
			t := now
			s.DeliveredAt = &t
		}
	}
}
