package delivery

import (
	"fmt"

	"geozone/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
//
// State transitions:
//
//	Pending ──> Assigned ──> InTransit ──> Delivered
//	   │            │            │
//	   └────────────┴────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions, no further
// location updates, and the boundary alert detector ignores them.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0)
	// helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the delivery exists but has no courier.
	Pending

	// Assigned indicates a courier has been assigned but has not picked the
	// delivery up yet. Reassignment is allowed in this status.
	Assigned

	// InTransit indicates the delivery is moving; its location updates feed
	// the geofencing engine.
	InTransit

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the abandoned terminal state, reachable from any
	// non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		InTransit: "InTransit",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Used when reconstructing deliveries from persistence or API input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions to Assigned. Allowed from Pending (initial assignment)
// and from Assigned (reassignment to a different courier).
func (s Status) Assign() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to assign", s))
	}
	return Assigned, nil
}

// Start transitions to InTransit. Allowed only from Assigned.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to start transit", s))
	}
	return InTransit, nil
}

// Complete transitions to Delivered. Allowed only from InTransit.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a valid status to complete", s))
	}
	return Delivered, nil
}

// Cancel transitions to Cancelled. Allowed from any non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is terminal and cannot be cancelled", s))
	}
	return Cancelled, nil
}
