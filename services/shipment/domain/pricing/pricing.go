// Package pricing derives every computed shipment field from raw inputs.
// All functions are pure and deterministic; monetary and weight outputs are
// rounded to 2 decimal places at the point of computation so persisted values
// stay stable and comparable. Callers must reject non-positive weights,
// dimensions, and distances before invoking this package.
package pricing

import (
	"math"
	"time"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// Per-kg-per-100km rates by shipping method.
var shippingRates = map[models.ShippingMethod]float64{
	models.MethodSameDay:   15.0,
	models.MethodOvernight: 8.0,
	models.MethodExpress:   5.0,
	models.MethodStandard:  2.5,
}

// Minimum charge by shipping method.
var minimumCharges = map[models.ShippingMethod]float64{
	models.MethodSameDay:   25,
	models.MethodOvernight: 15,
	models.MethodExpress:   10,
	models.MethodStandard:  5,
}

// Base delivery time in days by shipping method.
var deliveryTimeBase = map[models.ShippingMethod]float64{
	models.MethodSameDay:   0.5,
	models.MethodOvernight: 1,
	models.MethodExpress:   2,
	models.MethodStandard:  5,
}

// volumetricDivisor is the industry-standard dimensional-weight divisor
// for cm³ → kg conversion.
const volumetricDivisor = 5000

// insuranceRate is applied to the declared value for insured shipments,
// with a floor of minimumInsurance.
const (
	insuranceRate    = 0.02
	minimumInsurance = 5.0
)

// VolumetricWeight converts package dimensions (cm) to a billing weight (kg).
func VolumetricWeight(lengthCm, widthCm, heightCm float64) float64 {
	return round2(lengthCm * widthCm * heightCm / volumetricDivisor)
}

// ChargeableWeight is the weight the carrier bills on: whichever of actual
// and volumetric weight is larger.
func ChargeableWeight(actualKg, volumetricKg float64) float64 {
	return round2(math.Max(actualKg, volumetricKg))
}

// EstimatedDeliveryDays derives the delivery-time estimate from distance and
// method: base time per method scaled by a distance-bucket multiplier, rounded
// up to the next whole day, never less than 1.
func EstimatedDeliveryDays(distanceKm float64, method models.ShippingMethod) int {
	multiplier := 1.0
	switch {
	case distanceKm > 1000:
		multiplier = 3.0
	case distanceKm > 200:
		multiplier = 2.0
	case distanceKm > 50:
		multiplier = 1.5
	}

	days := int(math.Ceil(deliveryTimeBase[method] * multiplier))
	if days < 1 {
		days = 1
	}
	return days
}

// ShippingCost is weight × per-method rate × ceil(distance/100), floored at
// the per-method minimum charge.
func ShippingCost(weightKg, distanceKm float64, method models.ShippingMethod) float64 {
	distanceUnits := math.Ceil(distanceKm / 100)
	cost := weightKg * shippingRates[method] * distanceUnits
	return round2(math.Max(cost, minimumCharges[method]))
}

// InsuranceCost is 2% of the declared value with a 5.00 floor, or zero when
// the shipment is not insured.
func InsuranceCost(declaredValue float64, isInsured bool) float64 {
	if !isInsured {
		return 0
	}
	return round2(math.Max(declaredValue*insuranceRate, minimumInsurance))
}

// TotalCost sums shipping and insurance cost.
func TotalCost(shippingCost, insuranceCost float64) float64 {
	return round2(shippingCost + insuranceCost)
}

// EstimatedDeliveryDate is the reference instant plus the estimated number of
// calendar days.
func EstimatedDeliveryDate(ref time.Time, estimatedDays int) time.Time {
	return ref.AddDate(0, 0, estimatedDays)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
