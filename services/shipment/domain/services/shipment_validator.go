// Package services contains stateless domain services for the shipment
// bounded context. Domain services enforce business rules that operate purely
// on domain types and have zero external dependencies beyond stdlib and the
// domain layer.
package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// ValidateShipment performs cross-field validation on a Shipment aggregate
// before it is persisted. All validation runs before any mutation is applied;
// the first violated rule is reported with the offending field named.
//
// Business rules:
//   - weight, dimensions, and distance are strictly positive
//   - declared value and cost override are non-negative
//   - status, shipping method, and priority are members of their enumerations
//   - sender, recipient, origin, destination, and carrier are present
func ValidateShipment(s *models.Shipment) error {
	if s == nil {
		return fmt.Errorf("shipment cannot be nil")
	}
	if s.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}
	if s.UserID == uuid.Nil {
		return fmt.Errorf("user_id must be set")
	}

	for _, req := range []struct{ field, value string }{
		{"sender_name", s.SenderName},
		{"sender_address", s.SenderAddress},
		{"recipient_name", s.RecipientName},
		{"recipient_address", s.RecipientAddress},
		{"carrier", s.Carrier},
		{"origin", s.Origin},
		{"destination", s.Destination},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.field)
		}
	}

	for _, pos := range []struct {
		field string
		value float64
	}{
		{"weight_kg", s.WeightKg},
		{"length_cm", s.LengthCm},
		{"width_cm", s.WidthCm},
		{"height_cm", s.HeightCm},
		{"distance_km", s.DistanceKm},
	} {
		if pos.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", pos.field, pos.value)
		}
	}

	if s.DeclaredValue < 0 {
		return fmt.Errorf("declared_value must not be negative, got %v", s.DeclaredValue)
	}
	if s.ShippingCostOverride < 0 {
		return fmt.Errorf("shipping_cost must not be negative, got %v", s.ShippingCostOverride)
	}

	if !s.Status.Valid() {
		return fmt.Errorf("status %q is not a valid shipment status", s.Status)
	}
	if !s.ShippingMethod.Valid() {
		return fmt.Errorf("shipping_method %q is not a valid shipping method", s.ShippingMethod)
	}
	if !s.Priority.Valid() {
		return fmt.Errorf("priority %q is not a valid priority", s.Priority)
	}

	return nil
}
