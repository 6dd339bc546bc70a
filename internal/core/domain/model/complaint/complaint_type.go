package complaint

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// ComplaintType classifies what the customer is complaining about.
// The type decides two of the flow's guards: whether the goods must be
// physically picked up before a remedy, and whether the order must already
// be delivered when the complaint is filed.
type ComplaintType int

const (
	// TypeUnknown represents an invalid or undefined complaint type.
	TypeUnknown ComplaintType = iota

	// TypeNotReceived means the customer says the order never arrived.
	// There are no goods to collect, so the pickup sub-flow is skipped.
	TypeNotReceived

	// TypeDamaged means the goods arrived damaged.
	TypeDamaged

	// TypeReturn means the customer wants to return the goods.
	TypeReturn

	// TypeReplace means the customer wants the goods replaced.
	TypeReplace

	// TypeWarranty means the goods failed under warranty.
	TypeWarranty
)

func getComplaintTypeStrings() map[ComplaintType]string {
	return map[ComplaintType]string{
		TypeUnknown:     "unknown",
		TypeNotReceived: "not_received",
		TypeDamaged:     "damaged",
		TypeReturn:      "return",
		TypeReplace:     "replace",
		TypeWarranty:    "warranty",
	}
}

// ComplaintTypeFromString parses the persisted string representation.
func ComplaintTypeFromString(s string) (ComplaintType, error) {
	for t, str := range getComplaintTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"complaint type is invalid",
		fmt.Errorf("%q is not a valid complaint type", s),
	)
}

// Validate checks if the ComplaintType value is valid.
func (t ComplaintType) Validate() error {
	if _, ok := getComplaintTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"complaint type is invalid",
			fmt.Errorf("%d is not a valid complaint type", t),
		)
	}
	return nil
}

// String returns the persisted name of the complaint type.
func (t ComplaintType) String() string {
	if str, ok := getComplaintTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// RequiresPickup reports whether the goods must be physically collected
// before a remedy can be finalized. Not-received complaints have nothing to
// collect; every other type does.
func (t ComplaintType) RequiresPickup() bool {
	return t != TypeNotReceived
}

// RequiresDeliveredOrder reports whether the complaint only makes sense for
// an order the customer already received.
func (t ComplaintType) RequiresDeliveredOrder() bool {
	return t != TypeNotReceived
}

// IsWarranty reports whether a replacement remedy should produce a
// warranty-replacement order.
func (t ComplaintType) IsWarranty() bool {
	return t == TypeWarranty
}
