package domain

import "errors"

// Sentinel errors for the shipment domain. Use errors.Is() to check these.
var (
	// ErrShipmentNotFound indicates the requested shipment does not exist
	// or does not belong to the caller.
	ErrShipmentNotFound = errors.New("shipment not found")

	// ErrTrackingNumberExists indicates a shipment with the same tracking
	// number already exists.
	ErrTrackingNumberExists = errors.New("tracking number exists")

	// ErrInvalidTransition indicates a status update that does not follow
	// an allowed edge of the status graph.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidShipment indicates the shipment violates domain constraints:
	// missing required field, non-positive measurement, negative declared
	// value, or malformed enum value.
	ErrInvalidShipment = errors.New("invalid shipment")
)
