// Package query is the deterministic read-side engine over a shipment
// collection: free-text search, structured filters, sorting, and pagination,
// applied in that order so results are reproducible. It never mutates the
// collection, so calling it twice with identical parameters over an
// unmodified snapshot returns identical results.
package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

const (
	// DefaultLimit is the page size when none is requested.
	DefaultLimit = 10
	// MaxLimit caps the page size to prevent unbounded result sets.
	MaxLimit = 100
)

// Params is the structured query over a shipment collection. Zero values
// mean "not filtered"; boolean filters use pointers so false is expressible.
type Params struct {
	Search string

	Statuses   []models.Status
	Methods    []models.ShippingMethod
	Priorities []models.Priority
	IsPriority *bool
	IsInsured  *bool

	// CreatedFrom/CreatedTo bound CreatedAt inclusively.
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	SortBy    string
	SortOrder string // "asc" or "desc"; default desc on created_at

	Page  int
	Limit int
}

// Result is one page of a query plus the paging aggregates. Total counts the
// collection after search and filters but before pagination.
type Result struct {
	Items      []*models.Shipment
	Total      int
	Page       int
	TotalPages int
}

// Apply runs the query pipeline over the owner-scoped snapshot. Returns an
// error for a sort field outside the allow-list or a sort order other than
// asc or desc.
func Apply(shipments []*models.Shipment, p Params) (Result, error) {
	page, limit := normalizePaging(p.Page, p.Limit)

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	less, ok := sortFields[sortBy]
	if !ok {
		return Result{}, fmt.Errorf("cannot sort by %q", p.SortBy)
	}
	switch p.SortOrder {
	case "", "asc", "desc":
	default:
		return Result{}, fmt.Errorf("cannot order by %q, use asc or desc", p.SortOrder)
	}

	matched := make([]*models.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if matches(s, p) {
			matched = append(matched, s)
		}
	}

	// Default sort is created_at descending; an explicit sort field defaults
	// to ascending unless the caller asks for desc.
	descending := p.SortOrder == "desc" || (p.SortBy == "" && p.SortOrder == "")
	sort.SliceStable(matched, func(i, j int) bool {
		if descending {
			return less(matched[j], matched[i])
		}
		return less(matched[i], matched[j])
	})

	total := len(matched)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return Result{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case limit < 1:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	return page, limit
}

// matches applies search then filters: AND across filter categories,
// OR within a single category's value set.
func matches(s *models.Shipment, p Params) bool {
	if q := strings.ToLower(strings.TrimSpace(p.Search)); q != "" {
		if !searchHit(s, q) {
			return false
		}
	}

	if len(p.Statuses) > 0 && !containsStatus(p.Statuses, s.Status) {
		return false
	}
	if len(p.Methods) > 0 && !containsMethod(p.Methods, s.ShippingMethod) {
		return false
	}
	if len(p.Priorities) > 0 && !containsPriority(p.Priorities, s.Priority) {
		return false
	}
	if p.IsPriority != nil && s.IsPriority != *p.IsPriority {
		return false
	}
	if p.IsInsured != nil && s.IsInsured != *p.IsInsured {
		return false
	}
	if p.CreatedFrom != nil && s.CreatedAt.Before(*p.CreatedFrom) {
		return false
	}
	if p.CreatedTo != nil && s.CreatedAt.After(*p.CreatedTo) {
		return false
	}
	return true
}

// searchHit is a case-insensitive substring match over every searchable
// text field.
func searchHit(s *models.Shipment, q string) bool {
	for _, field := range []string{
		s.TrackingNumber.String(),
		s.Description,
		s.SenderName,
		s.RecipientName,
		s.SenderAddress,
		s.RecipientAddress,
		s.Carrier,
		s.Origin,
		s.Destination,
	} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func containsStatus(set []models.Status, v models.Status) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsMethod(set []models.ShippingMethod, v models.ShippingMethod) bool {
	for _, m := range set {
		if m == v {
			return true
		}
	}
	return false
}

func containsPriority(set []models.Priority, v models.Priority) bool {
	for _, p := range set {
		if p == v {
			return true
		}
	}
	return false
}
