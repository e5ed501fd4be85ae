package coupon

import (
	"strings"
	"time"

	"go-clothing-store/internal/apiclient"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	Percentage DiscountType = "percentage"
	Fixed      DiscountType = "fixed"
)

var hundred = decimal.NewFromInt(100)

// Coupon applies to the whole cart, never to a single line.
type Coupon struct {
	Code        string           `json:"code"`
	Type        DiscountType     `json:"discount_type"`
	Value       decimal.Decimal  `json:"discount_value"`
	MinPurchase *decimal.Decimal `json:"min_purchase,omitempty"`
	UsageLimit  *int             `json:"usage_limit,omitempty"`
	ValidFrom   *time.Time       `json:"valid_from,omitempty"`
	ValidUntil  *time.Time       `json:"valid_until,omitempty"`
	Active      bool             `json:"is_active"`
}

func FromAPI(c apiclient.Coupon) Coupon {
	return Coupon{
		Code:        c.Code,
		Type:        DiscountType(strings.ToLower(c.DiscountType)),
		Value:       c.DiscountValue,
		MinPurchase: c.MinPurchase,
		UsageLimit:  c.UsageLimit,
		ValidFrom:   c.ValidFrom,
		ValidUntil:  c.ValidUntil,
		Active:      c.IsActive,
	}
}

// Discount is the amount taken off subtotal: 0 without a coupon,
// subtotal*value/100 for percentage coupons, value for fixed ones. It never
// exceeds subtotal. The amount is exact; callers round for display.
func (c *Coupon) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if c == nil || !subtotal.IsPositive() || c.Value.IsNegative() {
		return decimal.Zero
	}

	var d decimal.Decimal
	switch c.Type {
	case Percentage:
		d = subtotal.Mul(c.Value).Div(hundred)
	case Fixed:
		d = c.Value
	default:
		return decimal.Zero
	}

	return decimal.Min(d, subtotal)
}

// FinalTotal is subtotal minus discount, floored at zero.
func FinalTotal(subtotal, discount decimal.Decimal) decimal.Decimal {
	return decimal.Max(subtotal.Sub(discount), decimal.Zero)
}

// Applicable reports whether the coupon may be used on subtotal at now. The
// store API is the authority; a false answer is only logged.
func (c *Coupon) Applicable(subtotal decimal.Decimal, now time.Time) bool {
	if c == nil {
		return false
	}
	if c.MinPurchase != nil && subtotal.LessThan(*c.MinPurchase) {
		return false
	}
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return false
	}
	return true
}
