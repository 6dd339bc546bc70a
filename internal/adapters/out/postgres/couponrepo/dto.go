// Package couponrepo provides data transfer objects and mapping functions for
// apology coupon persistence. Coupons are immutable once issued.
package couponrepo

import (
	"time"

	"aftersales/internal/core/domain/model/coupon"
)

// CouponDTO represents the database structure for persisting apology coupons.
// The code itself is the primary key; discount and usage limit are stored for
// the storefront even though the after-sales core fixes them.
type CouponDTO struct {
	Code            string    `gorm:"type:varchar(32);primaryKey"`
	DiscountPercent int       `gorm:"type:int;not null"`
	UsageLimit      int       `gorm:"type:int;not null"`
	IssuedAt        time.Time `gorm:"not null"`
	ValidUntil      time.Time `gorm:"not null"`
}

// TableName specifies the database table name for coupon entities.
// Overrides GORM's default naming convention to use "coupons".
func (CouponDTO) TableName() string {
	return "coupons"
}

// fromDomain converts an apology coupon to its database representation.
func fromDomain(c *coupon.Coupon) CouponDTO {
	return CouponDTO{
		Code:            c.Code(),
		DiscountPercent: c.DiscountPercent(),
		UsageLimit:      coupon.UsageLimit,
		IssuedAt:        c.IssuedAt(),
		ValidUntil:      c.ValidUntil(),
	}
}

// toDomain converts a database DTO to a coupon using RestoreCoupon.
func toDomain(dto CouponDTO) (*coupon.Coupon, error) {
	return coupon.RestoreCoupon(dto.Code, dto.IssuedAt, dto.ValidUntil)
}
