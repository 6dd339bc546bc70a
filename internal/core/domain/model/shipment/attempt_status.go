package shipment

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// AttemptStatus represents the outcome state of a delivery attempt.
//
// State transitions:
//
//	Scheduled ──> Failed
//	     │
//	     └──────> Delivered
//
// Both outcomes are terminal; a new attempt gets its own record.
type AttemptStatus int

const (
	// AttemptUnknown represents an invalid or undefined attempt status.
	AttemptUnknown AttemptStatus = iota

	// AttemptScheduled is the initial state of a recorded attempt.
	AttemptScheduled

	// AttemptFailed means the courier could not complete the delivery.
	AttemptFailed

	// AttemptDelivered means the attempt succeeded.
	AttemptDelivered
)

func getAttemptStatusStrings() map[AttemptStatus]string {
	return map[AttemptStatus]string{
		AttemptUnknown:   "unknown",
		AttemptScheduled: "scheduled",
		AttemptFailed:    "failed",
		AttemptDelivered: "delivered",
	}
}

// AttemptStatusFromString parses the persisted string representation.
func AttemptStatusFromString(s string) (AttemptStatus, error) {
	for status, str := range getAttemptStatusStrings() {
		if status != AttemptUnknown && str == s {
			return status, nil
		}
	}
	return AttemptUnknown, errs.NewValueIsInvalidErrorWithCause(
		"attempt status is invalid",
		fmt.Errorf("%q is not a valid attempt status", s),
	)
}

// Validate checks if the AttemptStatus value is valid.
func (s AttemptStatus) Validate() error {
	if s != AttemptScheduled && s != AttemptFailed && s != AttemptDelivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"attempt status is invalid",
			fmt.Errorf("%d is not a valid attempt status", s),
		)
	}
	return nil
}

// String returns the persisted name of the attempt status.
func (s AttemptStatus) String() string {
	if str, ok := getAttemptStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the attempt already has an outcome.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptFailed || s == AttemptDelivered
}
