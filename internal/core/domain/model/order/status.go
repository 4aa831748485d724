package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The reference workflow is:
//
//	Pending ──> InPrep ──> Served ──> Completed
//
// Every state before Completed may also move to Cancelled or Refunded.
// Completed, Cancelled and Refunded are terminal.
//
// Status updates submitted by staff are intentionally permissive: any valid
// status value is accepted regardless of the current state, because floor
// staff routinely correct mistakes (a ticket bumped too early, an order
// closed by accident). CanTransitionTo reports whether an update follows
// the reference workflow so callers can surface out-of-flow changes without
// rejecting them.
//
// Status is a value object; its string form is the wire and persistence
// representation.
type Status string

const (
	// Pending is the initial status when an order is first created.
	// Pending orders have not yet been dispatched to preparation stations.
	Pending Status = "pending"

	// InPrep indicates the order has been dispatched and its items are
	// being prepared at the kitchen and bar stations.
	InPrep Status = "in_prep"

	// Served indicates every item has been delivered to the table.
	Served Status = "served"

	// Completed indicates the order has been paid for and closed.
	Completed Status = "completed"

	// Cancelled indicates the order was abandoned before completion.
	Cancelled Status = "cancelled"

	// Refunded indicates an order closed out by returning the customer's
	// money before it reached completion.
	Refunded Status = "refunded"
)

// getValidStatuses returns the set of recognized status values.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:   {},
		InPrep:    {},
		Served:    {},
		Completed: {},
		Cancelled: {},
		Refunded:  {},
	}
}

// Validate checks if the Status value is one of the recognized statuses.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid status", string(s)),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// IsTerminal reports whether the status ends the order lifecycle.
// Completed, Cancelled and Refunded orders accept no further workflow steps.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Refunded
}

// IsActive reports whether the order is still being worked by the floor.
// Station views only show Pending and InPrep orders.
func (s Status) IsActive() bool {
	return s == Pending || s == InPrep
}

// CanTransitionTo reports whether moving to next follows the reference
// workflow. It never prevents an update; callers use it to flag
// out-of-flow changes for operators.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Pending:
		return next == InPrep || next == Cancelled || next == Refunded
	case InPrep:
		return next == Served || next == Cancelled || next == Refunded
	case Served:
		return next == Completed || next == Cancelled || next == Refunded
	default:
		return false
	}
}
