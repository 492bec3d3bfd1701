package query

import (
	"testing"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

func TestAggregate(t *testing.T) {
	shipments := fixture()
	stats := Aggregate(shipments)

	if stats.Total != 25 {
		t.Fatalf("total = %d, want 25", stats.Total)
	}
	if stats.ByStatus[models.StatusDelivered] != 5 {
		t.Fatalf("delivered = %d, want 5", stats.ByStatus[models.StatusDelivered])
	}
	if stats.PriorityCount != 13 {
		t.Fatalf("priority = %d, want 13", stats.PriorityCount)
	}
	if stats.InsuredCount != 9 {
		t.Fatalf("insured = %d, want 9", stats.InsuredCount)
	}
	// Total costs are 10+20+...+250.
	if stats.TotalValue != 3250 {
		t.Fatalf("total value = %v, want 3250", stats.TotalValue)
	}
}

func TestAggregate_Empty(t *testing.T) {
	stats := Aggregate(nil)
	if stats.Total != 0 || stats.TotalValue != 0 || len(stats.ByStatus) != 0 {
		t.Fatalf("unexpected stats for empty collection: %+v", stats)
	}
}
