package complaint

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// InvestigationStatus represents the verdict state of a complaint.
//
// State transitions:
//
//	Investigating ──> ResolvedTrue
//	       │
//	       └────────> ResolvedFalse
//
// Both verdicts are final for this field. ResolvedFalse terminates the case;
// ResolvedTrue opens the pickup/remedy sub-flow but the verdict itself never
// changes again.
type InvestigationStatus int

const (
	// InvestigationUnknown represents an invalid or undefined status.
	InvestigationUnknown InvestigationStatus = iota

	// Investigating is the initial status of every filed complaint.
	Investigating

	// ResolvedTrue means the complaint was verified as genuine.
	ResolvedTrue

	// ResolvedFalse means the complaint could not be verified. Terminal.
	ResolvedFalse
)

func getInvestigationStatusStrings() map[InvestigationStatus]string {
	return map[InvestigationStatus]string{
		InvestigationUnknown: "unknown",
		Investigating:        "investigating",
		ResolvedTrue:         "resolved_true",
		ResolvedFalse:        "resolved_false",
	}
}

// InvestigationStatusFromString parses the persisted string representation.
func InvestigationStatusFromString(s string) (InvestigationStatus, error) {
	for status, str := range getInvestigationStatusStrings() {
		if status != InvestigationUnknown && str == s {
			return status, nil
		}
	}
	return InvestigationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"investigation status is invalid",
		fmt.Errorf("%q is not a valid investigation status", s),
	)
}

// Validate checks if the InvestigationStatus value is valid.
func (s InvestigationStatus) Validate() error {
	if s != Investigating && s != ResolvedTrue && s != ResolvedFalse {
		return errs.NewValueIsInvalidErrorWithCause(
			"investigation status is invalid",
			fmt.Errorf("%d is not a valid investigation status", s),
		)
	}
	return nil
}

// String returns the persisted name of the investigation status.
func (s InvestigationStatus) String() string {
	if str, ok := getInvestigationStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsResolved reports whether a verdict has been recorded.
func (s InvestigationStatus) IsResolved() bool {
	return s == ResolvedTrue || s == ResolvedFalse
}
