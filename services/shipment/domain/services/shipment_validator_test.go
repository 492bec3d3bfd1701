package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

func validShipment() *models.Shipment {
	s := models.NewShipment(uuid.New(), "TRK-9000")
	s.SenderName = "Acme Warehouse"
	s.SenderAddress = "1 Depot Road"
	s.RecipientName = "Jordan Reyes"
	s.RecipientAddress = "42 Harbour View"
	s.Carrier = "NorthStar Freight"
	s.Origin = "Rotterdam"
	s.Destination = "Lisbon"
	s.ShippingMethod = models.MethodStandard
	s.Priority = models.PriorityMedium
	s.WeightKg = 2.5
	s.LengthCm = 30
	s.WidthCm = 20
	s.HeightCm = 10
	s.DistanceKm = 615
	s.DeclaredValue = 100
	return s
}

func TestValidateShipment_Valid(t *testing.T) {
	if err := ValidateShipment(validShipment()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateShipment_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Shipment)
		wantMsg string
	}{
		{"nil weight", func(s *models.Shipment) { s.WeightKg = 0 }, "weight_kg"},
		{"negative weight", func(s *models.Shipment) { s.WeightKg = -1 }, "weight_kg"},
		{"zero length", func(s *models.Shipment) { s.LengthCm = 0 }, "length_cm"},
		{"zero width", func(s *models.Shipment) { s.WidthCm = 0 }, "width_cm"},
		{"zero height", func(s *models.Shipment) { s.HeightCm = 0 }, "height_cm"},
		{"zero distance", func(s *models.Shipment) { s.DistanceKm = 0 }, "distance_km"},
		{"negative declared value", func(s *models.Shipment) { s.DeclaredValue = -5 }, "declared_value"},
		{"negative cost override", func(s *models.Shipment) { s.ShippingCostOverride = -1 }, "shipping_cost"},
		{"missing sender", func(s *models.Shipment) { s.SenderName = "" }, "sender_name"},
		{"missing recipient address", func(s *models.Shipment) { s.RecipientAddress = "" }, "recipient_address"},
		{"missing carrier", func(s *models.Shipment) { s.Carrier = "" }, "carrier"},
		{"missing origin", func(s *models.Shipment) { s.Origin = "" }, "origin"},
		{"bad status", func(s *models.Shipment) { s.Status = "LOST" }, "status"},
		{"bad method", func(s *models.Shipment) { s.ShippingMethod = "drone" }, "shipping_method"},
		{"bad priority", func(s *models.Shipment) { s.Priority = "extreme" }, "priority"},
		{"missing owner", func(s *models.Shipment) { s.UserID = uuid.Nil }, "user_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validShipment()
			tt.mutate(s)
			err := ValidateShipment(s)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("error %q does not name field %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateShipment_Nil(t *testing.T) {
	if err := ValidateShipment(nil); err == nil {
		t.Fatal("expected error for nil shipment")
	}
}
