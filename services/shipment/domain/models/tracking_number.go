package models

import (
	"fmt"
	"strings"
)

// TrackingNumber is a value object for the carrier-facing shipment identifier.
// It is unique across all shipments; uniqueness is enforced by the repository.
type TrackingNumber string

const maxTrackingNumberLength = 64

// NewTrackingNumber constructs a valid TrackingNumber or returns an error if
// constraints are violated: non-empty, at most 64 characters, no whitespace.
func NewTrackingNumber(s string) (TrackingNumber, error) {
	if s == "" {
		return "", fmt.Errorf("tracking number must not be empty")
	}
	if len(s) > maxTrackingNumberLength {
		return "", fmt.Errorf("tracking number must not exceed %d characters", maxTrackingNumberLength)
	}
	if strings.ContainsAny(s, " \t\n\r") {
		return "", fmt.Errorf("tracking number must not contain whitespace")
	}
	return TrackingNumber(s), nil
}

// String returns the underlying string value.
func (t TrackingNumber) String() string {
	return string(t)
}
