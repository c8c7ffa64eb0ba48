package order

import (
	"fmt"

	"foodmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──> Preparing ──> ReadyForDelivery ──> InDelivery ──> Delivered
//	   │            │                │
//	   └────────────┴────────────────┴──> Cancelled
//
// Cancellation is allowed from any state before the order leaves with a
// courier. Delivered and Cancelled are final states.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first accepted.
	Created

	// Preparing indicates the restaurant is preparing the order.
	Preparing

	// ReadyForDelivery indicates the order is ready to leave the restaurant.
	ReadyForDelivery

	// InDelivery indicates a courier is carrying the order to the customer.
	InDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was abandoned before delivery started.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Created:          "Created",
		Preparing:        "Preparing",
		ReadyForDelivery: "ReadyForDelivery",
		InDelivery:       "InDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:          "Created",
		Preparing:        "Preparing",
		ReadyForDelivery: "ReadyForDelivery",
		InDelivery:       "InDelivery",
		Delivered:        "Delivered",
		Cancelled:        "Cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// It is used when reconstructing orders from persistence.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Preparing, ReadyForDelivery, InDelivery,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status allows no further transitions.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// ValidateAssign checks if the status allows courier assignment without
// performing any transition.
//
// Assignment (and reassignment) is allowed while the order has not left the
// restaurant: Created, Preparing and ReadyForDelivery.
func (s Status) ValidateAssign() error {
	if s != Created && s != Preparing && s != ReadyForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}
	return nil
}

// StartPreparing transitions the status to Preparing.
//
// Valid transitions:
//   - Created -> Preparing
//
// Returns:
//   - (Preparing, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) StartPreparing() (Status, error) {
	if s != Created {
		return 0, transitionError(s, "start preparing")
	}
	return Preparing, nil
}

// MarkReady transitions the status to ReadyForDelivery.
//
// Valid transitions:
//   - Preparing -> ReadyForDelivery
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return 0, transitionError(s, "mark ready")
	}
	return ReadyForDelivery, nil
}

// StartDelivery transitions the status to InDelivery.
//
// Valid transitions:
//   - ReadyForDelivery -> InDelivery
//
// The caller must ensure a courier is assigned before starting delivery.
func (s Status) StartDelivery() (Status, error) {
	if s != ReadyForDelivery {
		return 0, transitionError(s, "start delivery")
	}
	return InDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - InDelivery -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != InDelivery {
		return 0, transitionError(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Preparing -> Cancelled
//   - ReadyForDelivery -> Cancelled
//
// Orders in delivery or already in a final state cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Preparing && s != ReadyForDelivery {
		return 0, transitionError(s, "cancel")
	}
	return Cancelled, nil
}

func transitionError(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action),
	)
}
