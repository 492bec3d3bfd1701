package models

import "fmt"

// ShippingMethod is the service level a shipment travels under. It drives
// both the rate table and the delivery-time estimate.
type ShippingMethod string

const (
	MethodStandard  ShippingMethod = "standard"
	MethodExpress   ShippingMethod = "express"
	MethodOvernight ShippingMethod = "overnight"
	MethodSameDay   ShippingMethod = "same-day"
)

var shippingMethods = map[ShippingMethod]struct{}{
	MethodStandard:  {},
	MethodExpress:   {},
	MethodOvernight: {},
	MethodSameDay:   {},
}

// ParseShippingMethod validates s against the closed method enumeration.
func ParseShippingMethod(s string) (ShippingMethod, error) {
	m := ShippingMethod(s)
	if _, ok := shippingMethods[m]; !ok {
		return "", fmt.Errorf("unknown shipping method %q", s)
	}
	return m, nil
}

// Valid reports whether m is a member of the method enumeration.
func (m ShippingMethod) Valid() bool {
	_, ok := shippingMethods[m]
	return ok
}

func (m ShippingMethod) String() string {
	return string(m)
}

// Priority is the handling priority of a shipment.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorities = map[Priority]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
	PriorityUrgent: {},
}

// ParsePriority validates s against the closed priority enumeration.
func ParsePriority(s string) (Priority, error) {
	p := Priority(s)
	if _, ok := priorities[p]; !ok {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Valid reports whether p is a member of the priority enumeration.
func (p Priority) Valid() bool {
	_, ok := priorities[p]
	return ok
}

func (p Priority) String() string {
	return string(p)
}
