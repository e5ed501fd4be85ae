package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

type CouponRequest struct {
	Code          string           `json:"code" binding:"required,max=50"`
	DiscountType  string           `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MinPurchase   *decimal.Decimal `json:"min_purchase"`
	UsageLimit    *int             `json:"usage_limit" binding:"omitempty,gte=1"`
	ValidFrom     *time.Time       `json:"valid_from"`
	ValidUntil    *time.Time       `json:"valid_until"`
	IsActive      *bool            `json:"is_active"`
}
