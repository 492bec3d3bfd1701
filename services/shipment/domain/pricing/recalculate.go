package pricing

import (
	"time"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// Recalculate repopulates every derived field of s from its raw fields.
// Run this after any mutation of the raw inputs; all outputs are recomputed,
// not just the ones whose inputs changed. ref is the reference instant for
// the estimated delivery date (normally the creation time).
//
// A positive ShippingCostOverride replaces the rate-table shipping cost; the
// total still includes insurance on top of the effective shipping cost.
func Recalculate(s *models.Shipment, ref time.Time) {
	s.VolumetricWeightKg = VolumetricWeight(s.LengthCm, s.WidthCm, s.HeightCm)
	s.ChargeableWeightKg = ChargeableWeight(s.WeightKg, s.VolumetricWeightKg)

	s.EstimatedDeliveryDays = EstimatedDeliveryDays(s.DistanceKm, s.ShippingMethod)
	s.EstimatedDeliveryDate = EstimatedDeliveryDate(ref, s.EstimatedDeliveryDays)

	s.ShippingCost = ShippingCost(s.WeightKg, s.DistanceKm, s.ShippingMethod)
	if s.ShippingCostOverride > 0 {
		s.ShippingCost = s.ShippingCostOverride
	}
	s.InsuranceCost = InsuranceCost(s.DeclaredValue, s.IsInsured)
	s.TotalCost = TotalCost(s.ShippingCost, s.InsuranceCost)
}
