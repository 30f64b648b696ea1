package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// The state machine is strictly sequential and one-directional:
//
//	New → Assigned → ToPickup → ToDropoff → Arrived → Completed
//
// Every transition advances by exactly one state; there is no skipping, no
// reversing, and no re-claiming. String values are the wire/storage names
// other tooling reads, so they are part of the durable contract.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status: the order is an open offer that any courier
	// may claim. No courier is bound yet.
	New

	// Assigned means exactly one courier has claimed the order.
	Assigned

	// ToPickup means the courier is en route to the pickup point (point A).
	ToPickup

	// ToDropoff means the courier is en route to the drop-off point (point B).
	ToDropoff

	// Arrived means the courier has reached the drop-off point.
	Arrived

	// Completed is the final state. It is entered through an explicit
	// completion request, never automatically.
	Completed
)

// getStatusStrings returns the storage/wire names for all statuses.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		New:       "new",
		Assigned:  "assigned",
		ToPickup:  "to_a",
		ToDropoff: "to_b",
		Arrived:   "arrived",
		Completed: "completed",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "new",
		Assigned:  "assigned",
		ToPickup:  "to_a",
		ToDropoff: "to_b",
		Arrived:   "arrived",
		Completed: "completed",
	}
}

// StatusFromString parses a storage/wire name back into a Status.
// Used by persistence and transport adapters.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one an order may hold.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the storage/wire name of the status.
// Implements fmt.Stringer; safe on any value, invalid ones print "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the immediate successor in the lifecycle.
// Returns false for Completed (terminal) and for invalid statuses.
func (s Status) Next() (Status, bool) {
	switch s {
	case New:
		return Assigned, true
	case Assigned:
		return ToPickup, true
	case ToPickup:
		return ToDropoff, true
	case ToDropoff:
		return Arrived, true
	case Arrived:
		return Completed, true
	default:
		return Unknown, false
	}
}

// CanTransitionTo reports whether target is the immediate successor of s.
// This is the only shape of edge the lifecycle permits.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := s.Next()
	return ok && next == target
}

// ValidateCanHaveCourier validates consistency between status and courier
// binding: a New order must have no courier, every later status must have one.
//
// Parameters:
//   - courier: whether the order has a courier bound
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == New {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && s != New {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}
