package order

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders follow
// the correct payment and fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Shipped ──> Delivered
//
// The placement workflow only drives Pending -> Paid; on a declined payment
// the order simply stays Pending. Shipped and Delivered are reached by
// fulfillment workflows running after placement.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every order. Orders stay Pending
	// until a payment is accepted, including after a declined payment.
	Pending

	// Paid indicates an accepted payment. From the placement workflow's
	// point of view this is terminal; fulfillment takes over from here.
	Paid

	// Shipped indicates the order has been handed to delivery.
	Shipped

	// Delivered indicates the order has reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns string representations for all Status values,
// including Unknown, to support display.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns only valid Status values to support
// validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, Paid, Shipped, and Delivered; Unknown (0) and
// any other values are invalid. Used to vet Status values coming from
// external sources such as the database.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid (payment accepted)
//
// Returns (0, error) for any other starting status: a paid, shipped, or
// delivered order cannot be paid again.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to pay", s))
	}

	return Paid, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Paid -> Shipped (handed to fulfillment)
//
// Unpaid orders cannot ship.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to ship", s))
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to deliver", s))
	}

	return Delivered, nil
}
