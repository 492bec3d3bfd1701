package query

import (
	"math"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// Stats are collection-level aggregates over all shipments owned by a user.
type Stats struct {
	Total         int                   `json:"total"`
	ByStatus      map[models.Status]int `json:"by_status"`
	PriorityCount int                   `json:"priority_count"`
	InsuredCount  int                   `json:"insured_count"`
	TotalValue    float64               `json:"total_value"`
}

// Aggregate computes stats over the full owner-scoped snapshot.
// TotalValue sums each shipment's total cost, rounded to 2 decimals.
func Aggregate(shipments []*models.Shipment) Stats {
	stats := Stats{
		ByStatus: make(map[models.Status]int),
	}
	var value float64
	for _, s := range shipments {
		stats.Total++
		stats.ByStatus[s.Status]++
		if s.IsPriority {
			stats.PriorityCount++
		}
		if s.IsInsured {
			stats.InsuredCount++
		}
		value += s.TotalCost
	}
	stats.TotalValue = math.Round(value*100) / 100
	return stats
}
