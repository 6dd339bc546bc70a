package complaint

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// ResolutionType records which remedy was granted for an approved complaint.
// A complaint receives at most one remedy: once set to ResolutionRefund or
// ResolutionReplacement the value never changes.
type ResolutionType int

const (
	// ResolutionUnknown represents an invalid or undefined value.
	ResolutionUnknown ResolutionType = iota

	// ResolutionNone means no remedy has been granted yet.
	ResolutionNone

	// ResolutionRefund means the remedy was a monetary refund.
	ResolutionRefund

	// ResolutionReplacement means the remedy was a replacement order.
	ResolutionReplacement
)

func getResolutionTypeStrings() map[ResolutionType]string {
	return map[ResolutionType]string{
		ResolutionUnknown:     "unknown",
		ResolutionNone:        "none",
		ResolutionRefund:      "refund",
		ResolutionReplacement: "replacement",
	}
}

// ResolutionTypeFromString parses the persisted string representation.
func ResolutionTypeFromString(s string) (ResolutionType, error) {
	for rt, str := range getResolutionTypeStrings() {
		if rt != ResolutionUnknown && str == s {
			return rt, nil
		}
	}
	return ResolutionUnknown, errs.NewValueIsInvalidErrorWithCause(
		"resolution type is invalid",
		fmt.Errorf("%q is not a valid resolution type", s),
	)
}

// Validate checks if the ResolutionType value is valid.
func (rt ResolutionType) Validate() error {
	if rt != ResolutionNone && rt != ResolutionRefund && rt != ResolutionReplacement {
		return errs.NewValueIsInvalidErrorWithCause(
			"resolution type is invalid",
			fmt.Errorf("%d is not a valid resolution type", rt),
		)
	}
	return nil
}

// String returns the persisted name of the resolution type.
func (rt ResolutionType) String() string {
	if str, ok := getResolutionTypeStrings()[rt]; ok {
		return str
	}
	return "unknown"
}
