package order

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// Type distinguishes regular checkout orders from zero-amount orders created
// by the complaint resolution flow.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeStandard is a regular checkout order.
	TypeStandard

	// TypeReplacement is a zero-amount clone created to replace returned goods.
	TypeReplacement

	// TypeWarrantyReplacement is a zero-amount clone created for a warranty claim.
	TypeWarrantyReplacement
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:             "unknown",
		TypeStandard:            "standard",
		TypeReplacement:         "replacement",
		TypeWarrantyReplacement: "warranty_replacement",
	}
}

// TypeFromString parses the persisted string representation of an order type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order type is invalid",
		fmt.Errorf("%q is not a valid order type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t != TypeStandard && t != TypeReplacement && t != TypeWarrantyReplacement {
		return errs.NewValueIsInvalidErrorWithCause(
			"order type is invalid",
			fmt.Errorf("%d is not a valid order type", t),
		)
	}
	return nil
}

// String returns the persisted name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// IsReplacement reports whether the order was produced by a complaint remedy.
func (t Type) IsReplacement() bool {
	return t == TypeReplacement || t == TypeWarrantyReplacement
}
