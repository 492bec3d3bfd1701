// Package memory provides an in-memory ShipmentRepository used by unit tests
// and local development without a database. It mirrors the Postgres
// implementation's error contract, including tracking number uniqueness.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	shipmentdomain "github.com/ghuser/shipstream/services/shipment/domain"
	"github.com/ghuser/shipstream/services/shipment/domain/models"
)

// ShipmentRepository is a thread-safe in-memory implementation of
// repositories.ShipmentRepository.
type ShipmentRepository struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]*models.Shipment
	byTracking map[models.TrackingNumber]uuid.UUID
}

// NewShipmentRepository returns an empty in-memory shipment repository.
func NewShipmentRepository() *ShipmentRepository {
	return &ShipmentRepository{
		byID:       make(map[uuid.UUID]*models.Shipment),
		byTracking: make(map[models.TrackingNumber]uuid.UUID),
	}
}

func (r *ShipmentRepository) Save(_ context.Context, s *models.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byTracking[s.TrackingNumber]; taken {
		return shipmentdomain.ErrTrackingNumberExists
	}
	cp := clone(s)
	r.byID[s.ID] = cp
	r.byTracking[s.TrackingNumber] = s.ID
	return nil
}

func (r *ShipmentRepository) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok || s.UserID != userID {
		return nil, shipmentdomain.ErrShipmentNotFound
	}
	return clone(s), nil
}

func (r *ShipmentRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*models.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*models.Shipment
	for _, s := range r.byID {
		if s.UserID == userID {
			out = append(out, clone(s))
		}
	}
	// Newest first, matching the Postgres implementation.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ShipmentRepository) Update(_ context.Context, s *models.Shipment, _ models.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[s.ID]
	if !ok || existing.UserID != s.UserID {
		return shipmentdomain.ErrShipmentNotFound
	}
	if existing.TrackingNumber != s.TrackingNumber {
		if owner, taken := r.byTracking[s.TrackingNumber]; taken && owner != s.ID {
			return shipmentdomain.ErrTrackingNumberExists
		}
		delete(r.byTracking, existing.TrackingNumber)
		r.byTracking[s.TrackingNumber] = s.ID
	}
	r.byID[s.ID] = clone(s)
	return nil
}

func (r *ShipmentRepository) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok || s.UserID != userID {
		return shipmentdomain.ErrShipmentNotFound
	}
	delete(r.byTracking, s.TrackingNumber)
	delete(r.byID, id)
	return nil
}

func clone(s *models.Shipment) *models.Shipment {
	cp := *s
	if s.ShippedAt != nil {
		t := *s.ShippedAt
		cp.ShippedAt = &t
	}
	if s.DeliveredAt != nil {
		t := *s.DeliveredAt
		cp.DeliveredAt = &t
	}
	return &cp
}
