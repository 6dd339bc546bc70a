package complaint

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// PickupStatus tracks the return-pickup sub-flow of an approved complaint.
//
// State transitions:
//
//	PickupNone ──> PickupScheduled ──> PickedUp
//
// The flow is strictly forward. PickedUp is terminal.
type PickupStatus int

const (
	// PickupUnknown represents an invalid or undefined status.
	PickupUnknown PickupStatus = iota

	// PickupNone means no pickup has been arranged yet.
	PickupNone

	// PickupScheduled means a pickup date has been set.
	PickupScheduled

	// PickedUp means the item has been collected from the customer. Terminal.
	PickedUp
)

func getPickupStatusStrings() map[PickupStatus]string {
	return map[PickupStatus]string{
		PickupUnknown:   "unknown",
		PickupNone:      "none",
		PickupScheduled: "scheduled",
		PickedUp:        "picked_up",
	}
}

// PickupStatusFromString parses the persisted string representation.
func PickupStatusFromString(s string) (PickupStatus, error) {
	for status, str := range getPickupStatusStrings() {
		if status != PickupUnknown && str == s {
			return status, nil
		}
	}
	return PickupUnknown, errs.NewValueIsInvalidErrorWithCause(
		"pickup status is invalid",
		fmt.Errorf("%q is not a valid pickup status", s),
	)
}

// Validate checks if the PickupStatus value is valid.
func (s PickupStatus) Validate() error {
	if s != PickupNone && s != PickupScheduled && s != PickedUp {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup status is invalid",
			fmt.Errorf("%d is not a valid pickup status", s),
		)
	}
	return nil
}

// String returns the persisted name of the pickup status.
func (s PickupStatus) String() string {
	if str, ok := getPickupStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
