package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewShipment(t *testing.T) {
	userID := uuid.New()

	t.Run("generates id and created_at", func(t *testing.T) {
		before := time.Now().UTC()
		s := NewShipment(userID, "TRK-1")
		after := time.Now().UTC()

		if s.ID == uuid.Nil {
			t.Fatal("expected non-zero UUID for ID")
		}
		if s.CreatedAt.Before(before) || s.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", s.CreatedAt, before, after)
		}
	})

	t.Run("starts in CREATED", func(t *testing.T) {
		s := NewShipment(userID, "TRK-1")
		if s.Status != StatusCreated {
			t.Fatalf("expected CREATED, got %s", s.Status)
		}
	})

	t.Run("scopes to owner", func(t *testing.T) {
		s := NewShipment(userID, "TRK-1")
		if s.UserID != userID {
			t.Fatalf("expected UserID %v, got %v", userID, s.UserID)
		}
	})

	t.Run("unique ids per call", func(t *testing.T) {
		a := NewShipment(userID, "TRK-1")
		b := NewShipment(userID, "TRK-2")
		if a.ID == b.ID {
			t.Fatal("expected unique IDs")
		}
	})
}

func TestApplyStatus_StampsShippedAt(t *testing.T) {
	now := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	s := NewShipment(uuid.New(), "TRK-1")

	s.ApplyStatus(StatusPickedUp, now)

	if s.Status != StatusPickedUp {
		t.Fatalf("status = %s, want PICKED_UP", s.Status)
	}
	if s.ShippedAt == nil || !s.ShippedAt.Equal(now) {
		t.Fatalf("ShippedAt = %v, want %v", s.ShippedAt, now)
	}
}

func TestApplyStatus_DoesNotRestampShippedAt(t *testing.T) {
	first := time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC)
	s := NewShipment(uuid.New(), "TRK-1")
	s.ApplyStatus(StatusPickedUp, first)

	// A later stamp attempt must not overwrite the original timestamp.
	s.ShippedAt = &first
	s.ApplyStatus(StatusPickedUp, first.Add(time.Hour))
	if !s.ShippedAt.Equal(first) {
		t.Fatalf("ShippedAt overwritten: %v", s.ShippedAt)
	}
}

func TestApplyStatus_StampsDeliveredAt(t *testing.T) {
	now := time.Date(2025, 4, 5, 17, 30, 0, 0, time.UTC)
	s := NewShipment(uuid.New(), "TRK-1")
	s.Status = StatusOutForDelivery

	s.ApplyStatus(StatusDelivered, now)

	if s.DeliveredAt == nil || !s.DeliveredAt.Equal(now) {
		t.Fatalf("DeliveredAt = %v, want %v", s.DeliveredAt, now)
	}
}

func TestApplyStatus_OtherTransitionsDoNotStamp(t *testing.T) {
	s := NewShipment(uuid.New(), "TRK-1")
	s.Status = StatusPickedUp
	s.ApplyStatus(StatusInTransit, time.Now().UTC())

	if s.ShippedAt != nil {
		t.Fatal("IN_TRANSIT must not stamp ShippedAt")
	}
	if s.DeliveredAt != nil {
		t.Fatal("IN_TRANSIT must not stamp DeliveredAt")
	}
}
