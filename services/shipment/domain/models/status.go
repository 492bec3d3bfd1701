package models

import "fmt"

// Status is the lifecycle state of a shipment.
type Status string

const (
	StatusCreated        Status = "CREATED"
	StatusPickedUp       Status = "PICKED_UP"
	StatusInTransit      Status = "IN_TRANSIT"
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	StatusDelivered      Status = "DELIVERED"
	StatusCancelled      Status = "CANCELLED"
	StatusReturned       Status = "RETURNED"
)

// statusTransitions is the directed adjacency of allowed next states.
// DELIVERED, CANCELLED, and RETURNED are terminal.
var statusTransitions = map[Status][]Status{
	StatusCreated:        {StatusPickedUp, StatusCancelled},
	StatusPickedUp:       {StatusInTransit, StatusReturned},
	StatusInTransit:      {StatusOutForDelivery, StatusReturned, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusReturned},
	StatusDelivered:      {},
	StatusCancelled:      {},
	StatusReturned:       {},
}

// ParseStatus validates s against the closed status enumeration.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if _, ok := statusTransitions[st]; !ok {
		return "", fmt.Errorf("unknown shipment status %q", s)
	}
	return st, nil
}

// Valid reports whether s is a member of the status enumeration.
func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are allowed from s.
func (s Status) Terminal() bool {
	return len(statusTransitions[s]) == 0 && s.Valid()
}

// CanTransition reports whether moving from s to next follows an allowed
// edge of the status graph. A no-op transition (s == next) is not an edge;
// callers skip the check when the status is unchanged.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
