package ports

import (
	"context"

	"aftersales/internal/core/domain/model/coupon"
)

// CouponRepository defines the persistence contract for apology coupons.
type CouponRepository interface {
	// Add persists a newly issued coupon. The code column is unique, so a
	// generated code that collides with an existing one fails the insert.
	Add(ctx context.Context, c *coupon.Coupon) error

	// GetByCode retrieves a coupon by its code.
	// Returns an ObjectNotFoundError when no such coupon exists.
	GetByCode(ctx context.Context, code string) (*coupon.Coupon, error)
}
