package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

type fallback struct{}

// NewFallback returns a Client that builds summaries from a template,
// without any external call. Used when no API key is configured and as
// the safety net in tests.
func NewFallback() Client {
	return &fallback{}
}

func (f *fallback) SummarizeShipment(_ context.Context, s *models.Shipment) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Shipment %s is %s", s.TrackingNumber, describeStatus(s.Status))
	if s.Origin != "" && s.Destination != "" {
		fmt.Fprintf(&b, ", traveling from %s to %s", s.Origin, s.Destination)
	}
	if s.Carrier != "" {
		fmt.Fprintf(&b, " with %s", s.Carrier)
	}
	fmt.Fprintf(&b, " via %s shipping.", s.ShippingMethod)

	switch {
	case s.DeliveredAt != nil:
		fmt.Fprintf(&b, " It was delivered on %s.", s.DeliveredAt.Format("January 2, 2006"))
	case !s.EstimatedDeliveryDate.IsZero():
		fmt.Fprintf(&b, " Estimated delivery is %s (%d day transit).",
			s.EstimatedDeliveryDate.Format("January 2, 2006"), s.EstimatedDeliveryDays)
	}

	fmt.Fprintf(&b, " The total cost is %.2f", s.TotalCost)
	if s.IsInsured {
		fmt.Fprintf(&b, ", including %.2f insurance on a declared value of %.2f", s.InsuranceCost, s.DeclaredValue)
	}
	b.WriteString(".")

	var notes []string
	if s.IsFragile {
		notes = append(notes, "fragile")
	}
	if s.RequiresSignature {
		notes = append(notes, "signature required on delivery")
	}
	if s.IsPriority {
		notes = append(notes, "priority handling")
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, " Handling notes: %s.", strings.Join(notes, ", "))
	}
	return b.String(), nil
}

func describeStatus(s models.Status) string {
	switch s {
	case models.StatusCreated:
		return "awaiting pickup"
	case models.StatusPickedUp:
		return "picked up"
	case models.StatusInTransit:
		return "in transit"
	case models.StatusOutForDelivery:
		return "out for delivery"
	case models.StatusDelivered:
		return "delivered"
	case models.StatusCancelled:
		return "cancelled"
	case models.StatusReturned:
		return "returned to sender"
	default:
		return strings.ToLower(string(s))
	}
}
