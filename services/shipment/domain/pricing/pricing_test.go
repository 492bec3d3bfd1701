package pricing

import (
	"testing"
	"time"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

func TestVolumetricWeight(t *testing.T) {
	tests := []struct {
		name    string
		l, w, h float64
		want    float64
	}{
		{"standard parcel", 30, 20, 10, 1.2},
		{"cube", 50, 50, 50, 25},
		{"flat envelope", 30, 21, 1, 0.13},
		{"bulky and light", 100, 80, 60, 96},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VolumetricWeight(tt.l, tt.w, tt.h); got != tt.want {
				t.Fatalf("VolumetricWeight(%v, %v, %v) = %v, want %v", tt.l, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestChargeableWeight(t *testing.T) {
	t.Run("actual wins when heavier", func(t *testing.T) {
		if got := ChargeableWeight(2.5, 1.2); got != 2.5 {
			t.Fatalf("got %v, want 2.5", got)
		}
	})
	t.Run("volumetric wins when bulkier", func(t *testing.T) {
		if got := ChargeableWeight(2.5, 96); got != 96 {
			t.Fatalf("got %v, want 96", got)
		}
	})
	t.Run("equal weights", func(t *testing.T) {
		if got := ChargeableWeight(3, 3); got != 3 {
			t.Fatalf("got %v, want 3", got)
		}
	})
}

func TestEstimatedDeliveryDays(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		method   models.ShippingMethod
		want     int
	}{
		{"express national bucket", 615, models.MethodExpress, 4},
		{"standard local", 30, models.MethodStandard, 5},
		{"standard regional", 150, models.MethodStandard, 8},
		{"standard national", 500, models.MethodStandard, 10},
		{"standard international", 2000, models.MethodStandard, 15},
		{"same-day local floors at one day", 10, models.MethodSameDay, 1},
		{"same-day regional rounds up", 100, models.MethodSameDay, 1},
		{"same-day international", 1500, models.MethodSameDay, 2},
		{"overnight local", 40, models.MethodOvernight, 1},
		{"overnight national", 900, models.MethodOvernight, 2},
		{"bucket boundary at 50", 50, models.MethodExpress, 2},
		{"just past boundary at 50", 51, models.MethodExpress, 3},
		{"bucket boundary at 200", 200, models.MethodExpress, 3},
		{"bucket boundary at 1000", 1000, models.MethodExpress, 4},
		{"just past boundary at 1000", 1001, models.MethodExpress, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimatedDeliveryDays(tt.distance, tt.method); got != tt.want {
				t.Fatalf("EstimatedDeliveryDays(%v, %s) = %d, want %d", tt.distance, tt.method, got, tt.want)
			}
		})
	}
}

// Crossing a distance-bucket boundary must never shorten the estimate.
func TestEstimatedDeliveryDays_MonotonicAcrossBuckets(t *testing.T) {
	distances := []float64{1, 50, 51, 200, 201, 1000, 1001, 5000}
	for _, method := range []models.ShippingMethod{
		models.MethodSameDay, models.MethodOvernight, models.MethodExpress, models.MethodStandard,
	} {
		prev := 0
		for _, d := range distances {
			days := EstimatedDeliveryDays(d, method)
			if days < prev {
				t.Fatalf("%s: days decreased from %d to %d at distance %v", method, prev, days, d)
			}
			prev = days
		}
	}
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		weight   float64
		distance float64
		method   models.ShippingMethod
		want     float64
	}{
		{"express above minimum", 2.5, 615, models.MethodExpress, 87.5},
		{"standard light short haul hits minimum", 0.5, 10, models.MethodStandard, 5},
		{"express light short haul hits minimum", 0.5, 10, models.MethodExpress, 10},
		{"overnight light short haul hits minimum", 0.5, 10, models.MethodOvernight, 15},
		{"same-day light short haul hits minimum", 0.5, 10, models.MethodSameDay, 25},
		{"distance rounds up to 100km units", 1, 101, models.MethodStandard, 5},
		{"standard heavy long haul", 10, 1000, models.MethodStandard, 250},
		{"same-day heavy", 4, 120, models.MethodSameDay, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShippingCost(tt.weight, tt.distance, tt.method); got != tt.want {
				t.Fatalf("ShippingCost(%v, %v, %s) = %v, want %v", tt.weight, tt.distance, tt.method, got, tt.want)
			}
		})
	}
}

func TestInsuranceCost(t *testing.T) {
	tests := []struct {
		name     string
		declared float64
		insured  bool
		want     float64
	}{
		{"not insured", 1200, false, 0},
		{"two percent of declared value", 1200, true, 24},
		{"floor of five", 100, true, 5},
		{"zero declared value still floors", 0, true, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InsuranceCost(tt.declared, tt.insured); got != tt.want {
				t.Fatalf("InsuranceCost(%v, %v) = %v, want %v", tt.declared, tt.insured, got, tt.want)
			}
		})
	}
}

func TestTotalCost(t *testing.T) {
	if got := TotalCost(87.5, 24); got != 111.5 {
		t.Fatalf("TotalCost(87.5, 24) = %v, want 111.5", got)
	}
	if got := TotalCost(0.1, 0.2); got != 0.3 {
		t.Fatalf("TotalCost rounds to 2 decimals, got %v", got)
	}
}

func TestEstimatedDeliveryDate(t *testing.T) {
	ref := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	got := EstimatedDeliveryDate(ref, 4)
	want := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("EstimatedDeliveryDate = %v, want %v", got, want)
	}
}
