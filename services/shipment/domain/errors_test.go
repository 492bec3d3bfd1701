package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Messages(t *testing.T) {
	if ErrShipmentNotFound.Error() != "shipment not found" {
		t.Fatalf("unexpected message: %q", ErrShipmentNotFound.Error())
	}
	if ErrTrackingNumberExists.Error() != "tracking number exists" {
		t.Fatalf("unexpected message: %q", ErrTrackingNumberExists.Error())
	}
	if ErrInvalidTransition.Error() != "invalid status transition" {
		t.Fatalf("unexpected message: %q", ErrInvalidTransition.Error())
	}
	if ErrInvalidShipment.Error() != "invalid shipment" {
		t.Fatalf("unexpected message: %q", ErrInvalidShipment.Error())
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get shipment: %w", ErrShipmentNotFound)
	if !errors.Is(wrapped, ErrShipmentNotFound) {
		t.Fatal("errors.Is must match wrapped ErrShipmentNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrInvalidTransition, errors.New("DELIVERED to CREATED"))
	if !errors.Is(wrapped2, ErrInvalidTransition) {
		t.Fatal("errors.Is must match double-wrapped ErrInvalidTransition")
	}
}
