package query

import "github.com/ghuser/shipstream/services/shipment/domain/models"

// lessFunc orders two shipments ascending on one field.
type lessFunc func(a, b *models.Shipment) bool

// sortFields is the server-side allow-list of sortable fields. Client input
// is validated against this map so arbitrary field names never reach the
// comparison; an unknown field is a validation error, not a silent default.
var sortFields = map[string]lessFunc{
	"created_at": func(a, b *models.Shipment) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"estimated_delivery_date": func(a, b *models.Shipment) bool {
		return a.EstimatedDeliveryDate.Before(b.EstimatedDeliveryDate)
	},
	"estimated_delivery_days": func(a, b *models.Shipment) bool {
		return a.EstimatedDeliveryDays < b.EstimatedDeliveryDays
	},
	"tracking_number": func(a, b *models.Shipment) bool { return a.TrackingNumber < b.TrackingNumber },
	"sender_name":     func(a, b *models.Shipment) bool { return a.SenderName < b.SenderName },
	"recipient_name":  func(a, b *models.Shipment) bool { return a.RecipientName < b.RecipientName },
	"carrier":         func(a, b *models.Shipment) bool { return a.Carrier < b.Carrier },
	"origin":          func(a, b *models.Shipment) bool { return a.Origin < b.Origin },
	"destination":     func(a, b *models.Shipment) bool { return a.Destination < b.Destination },
	"status":          func(a, b *models.Shipment) bool { return a.Status < b.Status },
	"shipping_method": func(a, b *models.Shipment) bool { return a.ShippingMethod < b.ShippingMethod },
	"priority":        func(a, b *models.Shipment) bool { return a.Priority < b.Priority },
	"weight_kg":       func(a, b *models.Shipment) bool { return a.WeightKg < b.WeightKg },
	"chargeable_weight_kg": func(a, b *models.Shipment) bool {
		return a.ChargeableWeightKg < b.ChargeableWeightKg
	},
	"distance_km":    func(a, b *models.Shipment) bool { return a.DistanceKm < b.DistanceKm },
	"declared_value": func(a, b *models.Shipment) bool { return a.DeclaredValue < b.DeclaredValue },
	"shipping_cost":  func(a, b *models.Shipment) bool { return a.ShippingCost < b.ShippingCost },
	"total_cost":     func(a, b *models.Shipment) bool { return a.TotalCost < b.TotalCost },
}

// SortableFields lists the fields clients may sort by.
func SortableFields() []string {
	fields := make([]string, 0, len(sortFields))
	for f := range sortFields {
		fields = append(fields, f)
	}
	return fields
}
