// Package coupon implements the apology coupon issued when a complaint is
// verified. Exactly one coupon is generated per verified complaint; its code
// and terms are immutable once issued.
package coupon

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"time"

	"aftersales/internal/pkg/errs"
)

// Coupon terms are fixed for apology coupons: a single-use 20% discount
// valid for one year from issuance.
const (
	CodePrefix    = "SORRY"
	CodeSuffixLen = 6
	DiscountType  = "percentage"
	DiscountValue = 20
	UsageLimit    = 1
	PerUserLimit  = 1
	Category      = "apology"
	ValidityDays  = 365
)

// codeCharset deliberately uses upper-case alphanumerics only, so codes
// survive being read out loud or typed from a phone screen.
const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var codePattern = regexp.MustCompile(`^SORRY[A-Z0-9]{6}$`)

// ErrCouponIsNotConstructed is returned when a Coupon instance was not created
// through NewApologyCoupon or RestoreCoupon.
var ErrCouponIsNotConstructed = errors.New(
	"Coupon must be created via NewApologyCoupon or RestoreCoupon")

// Coupon is the single-use apology discount issued to a customer whose
// complaint was verified.
type Coupon struct {
	code       string
	issuedAt   time.Time
	validUntil time.Time

	isConstructed bool
}

// NewApologyCoupon generates a fresh apology coupon issued at the given time.
// The code matches ^SORRY[A-Z0-9]{6}$ and the coupon is valid for 365 days.
func NewApologyCoupon(issuedAt time.Time) (*Coupon, error) {
	suffix := make([]byte, CodeSuffixLen)
	random := make([]byte, CodeSuffixLen)
	if _, err := rand.Read(random); err != nil {
		return nil, fmt.Errorf("generating coupon code: %w", err)
	}
	for i, b := range random {
		suffix[i] = codeCharset[int(b)%len(codeCharset)]
	}

	return &Coupon{
		code:          CodePrefix + string(suffix),
		issuedAt:      issuedAt,
		validUntil:    issuedAt.AddDate(0, 0, ValidityDays),
		isConstructed: true,
	}, nil
}

// RestoreCoupon reconstructs a coupon from persistence.
func RestoreCoupon(code string, issuedAt, validUntil time.Time) (*Coupon, error) {
	if !codePattern.MatchString(code) {
		return nil, errs.NewValueIsInvalidErrorWithCause("coupon code is invalid",
			fmt.Errorf("%q does not match the apology code pattern", code))
	}
	if issuedAt.IsZero() || validUntil.IsZero() {
		return nil, errs.NewValueIsRequiredError("coupon timestamps")
	}

	return &Coupon{
		code:          code,
		issuedAt:      issuedAt,
		validUntil:    validUntil,
		isConstructed: true,
	}, nil
}

// Validate ensures the Coupon was created via a factory method.
func (c *Coupon) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCouponIsNotConstructed
	}
	return nil
}

// Code returns the coupon code (SORRY followed by 6 upper-alphanumerics).
func (c *Coupon) Code() string {
	return c.code
}

// DiscountPercent returns the discount value, always 20 for apology coupons.
func (c *Coupon) DiscountPercent() int {
	return DiscountValue
}

// IssuedAt returns when the coupon was generated.
func (c *Coupon) IssuedAt() time.Time {
	return c.issuedAt
}

// ValidUntil returns the expiry, 365 days after issuance.
func (c *Coupon) ValidUntil() time.Time {
	return c.validUntil
}
