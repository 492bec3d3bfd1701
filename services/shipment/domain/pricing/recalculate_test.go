package pricing

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

func baseShipment() *models.Shipment {
	s := models.NewShipment(uuid.New(), "TRK-1001")
	s.WeightKg = 2.5
	s.LengthCm = 30
	s.WidthCm = 20
	s.HeightCm = 10
	s.DistanceKm = 615
	s.DeclaredValue = 1200
	s.IsInsured = true
	s.ShippingMethod = models.MethodExpress
	s.Priority = models.PriorityMedium
	return s
}

func TestRecalculate(t *testing.T) {
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s := baseShipment()
	Recalculate(s, ref)

	t.Run("weights", func(t *testing.T) {
		if s.VolumetricWeightKg != 1.2 {
			t.Fatalf("volumetric weight = %v, want 1.2", s.VolumetricWeightKg)
		}
		if s.ChargeableWeightKg != 2.5 {
			t.Fatalf("chargeable weight = %v, want 2.5", s.ChargeableWeightKg)
		}
	})

	t.Run("delivery estimate", func(t *testing.T) {
		if s.EstimatedDeliveryDays != 4 {
			t.Fatalf("estimated days = %d, want 4", s.EstimatedDeliveryDays)
		}
		want := ref.AddDate(0, 0, 4)
		if !s.EstimatedDeliveryDate.Equal(want) {
			t.Fatalf("estimated date = %v, want %v", s.EstimatedDeliveryDate, want)
		}
	})

	t.Run("costs", func(t *testing.T) {
		if s.ShippingCost != 87.5 {
			t.Fatalf("shipping cost = %v, want 87.5", s.ShippingCost)
		}
		if s.InsuranceCost != 24 {
			t.Fatalf("insurance cost = %v, want 24", s.InsuranceCost)
		}
		if s.TotalCost != 111.5 {
			t.Fatalf("total cost = %v, want 111.5", s.TotalCost)
		}
	})
}

func TestRecalculate_TotalIsAlwaysSum(t *testing.T) {
	ref := time.Now().UTC()
	for _, insured := range []bool{true, false} {
		for _, method := range []models.ShippingMethod{
			models.MethodStandard, models.MethodExpress, models.MethodOvernight, models.MethodSameDay,
		} {
			s := baseShipment()
			s.IsInsured = insured
			s.ShippingMethod = method
			Recalculate(s, ref)
			if s.TotalCost != TotalCost(s.ShippingCost, s.InsuranceCost) {
				t.Fatalf("%s insured=%v: total %v != shipping %v + insurance %v",
					method, insured, s.TotalCost, s.ShippingCost, s.InsuranceCost)
			}
		}
	}
}

func TestRecalculate_CostOverride(t *testing.T) {
	ref := time.Now().UTC()
	s := baseShipment()
	s.ShippingCostOverride = 42.42
	Recalculate(s, ref)

	if s.ShippingCost != 42.42 {
		t.Fatalf("shipping cost = %v, want override 42.42", s.ShippingCost)
	}
	if s.TotalCost != 66.42 {
		t.Fatalf("total cost = %v, want 66.42 (override + insurance)", s.TotalCost)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	ref := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s := baseShipment()
	Recalculate(s, ref)
	first := *s
	Recalculate(s, ref)
	if *s != first {
		t.Fatal("recalculating twice with identical inputs changed the shipment")
	}
}
