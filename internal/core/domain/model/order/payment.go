package order

import (
	"fmt"

	"aftersales/internal/pkg/errs"
)

// PaymentStatus represents the payment state of an order.
// Transitions: Pending -> Paid -> Refunded. Refunds are requested by the
// complaint resolution flow and only ever apply to paid orders.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means payment has not been captured yet (typical for COD).
	PaymentPending

	// PaymentPaid means payment has been captured.
	PaymentPaid

	// PaymentRefunded means the captured payment has been returned to the customer.
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses the persisted string representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentPaid && p != PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}

// String returns the persisted name of the payment status.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Refund transitions the payment status to Refunded.
//
// Valid transitions:
//   - Paid -> Refunded
func (p PaymentStatus) Refund() (PaymentStatus, error) {
	if p != PaymentPaid {
		return 0, errs.NewInvalidTransitionError("paymentStatus", p.String(), PaymentRefunded.String())
	}
	return PaymentRefunded, nil
}

// PaymentMethod identifies how the customer pays for an order.
// COD orders are never refunded through a gateway, which is why the status
// projection treats failed COD deliveries differently.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD

	// PaymentMethodUPI is a UPI transfer.
	PaymentMethodUPI

	// PaymentMethodCard is a debit or credit card payment.
	PaymentMethodCard

	// PaymentMethodNetBanking is a direct bank transfer.
	PaymentMethodNetBanking
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:    "unknown",
		PaymentMethodCOD:        "cod",
		PaymentMethodUPI:        "upi",
		PaymentMethodCard:       "card",
		PaymentMethodNetBanking: "netbanking",
	}
}

// PaymentMethodFromString parses the persisted string representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok || m == PaymentMethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the persisted name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// IsCOD reports whether the method is cash on delivery.
func (m PaymentMethod) IsCOD() bool {
	return m == PaymentMethodCOD
}
