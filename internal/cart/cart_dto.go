package cart

import (
	"encoding/base64"
	"strings"

	"go-clothing-store/internal/coupon"

	"github.com/shopspring/decimal"
)

// ==================== DOMAIN ====================

// Line is one cart row. Key is (product, size, color) for a guest cart and
// the server cart-item id for an authenticated one.
type Line struct {
	Key             string          `json:"key"`
	ProductID       string          `json:"productId"`
	SpecificationID string          `json:"specificationId,omitempty"`
	Name            string          `json:"name"`
	Size            string          `json:"size,omitempty"`
	Color           string          `json:"color,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// GuestKey identifies a guest line by product, size and color. The result
// is base64url so it fits in a single path segment whatever the variant
// names contain.
func GuestKey(productID, size, color string) string {
	raw := strings.Join([]string{
		productID,
		strings.ToLower(strings.TrimSpace(size)),
		strings.ToLower(strings.TrimSpace(color)),
	}, ":")
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID       string `json:"productId" binding:"required" validate:"required"`
	SpecificationID string `json:"specificationId"`
	Size            string `json:"size" validate:"max=20"`
	Color           string `json:"color" validate:"max=40"`
	// Quantity defaults to 1.
	Quantity int `json:"quantity" validate:"gte=0,lte=99"`
}

type UpdateQtyRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Final      decimal.Decimal `json:"finalTotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

type CartResponse struct {
	Mode      string         `json:"mode"`
	Items     []Line         `json:"items"`
	ItemCount int            `json:"itemCount"`
	Coupon    *coupon.Coupon `json:"coupon,omitempty"`
	Totals    Totals         `json:"totals"`
}

type ApplyCouponResponse struct {
	Applied bool         `json:"applied"`
	Message string       `json:"message"`
	Cart    CartResponse `json:"cart"`
}

type CountResponse struct {
	Count int `json:"count"`
}
