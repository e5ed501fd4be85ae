package apiclient

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListParams struct {
	Page       int
	PerPage    int
	Search     string
	CategoryID string
	Sort       string
	// Status filters order lists.
	Status string
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	LastPage    int   `json:"last_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
}

type User struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone,omitempty"`
	Address string          `json:"address,omitempty"`
	Role    string          `json:"role"`
	IsAdmin bool            `json:"is_admin"`
	Balance decimal.Decimal `json:"balance"`
}

type UserPage struct {
	Data []User   `json:"data"`
	Meta PageMeta `json:"meta"`
}

type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type ResetPasswordRequest struct {
	Token                string `json:"token"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type UpdatePasswordRequest struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	IsAdmin *bool   `json:"is_admin,omitempty"`
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Specification is a product variant (size/color) with its own price delta.
type Specification struct {
	ID         string          `json:"id"`
	ProductID  string          `json:"product_id"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	PriceDelta decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
}

type SpecificationInput struct {
	ProductID  string          `json:"product_id"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	PriceDelta decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
}

type Product struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Slug           string          `json:"slug"`
	Description    string          `json:"description,omitempty"`
	Price          decimal.Decimal `json:"price"`
	Stock          int             `json:"stock"`
	CategoryID     string          `json:"category_id"`
	ImageURL       string          `json:"image_url,omitempty"`
	Specifications []Specification `json:"specifications,omitempty"`
}

type ProductPage struct {
	Data []Product `json:"data"`
	Meta PageMeta  `json:"meta"`
}

type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  string          `json:"category_id"`
	ImageURL    string          `json:"image_url,omitempty"`
}

type CartItem struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	SpecificationID string          `json:"specification_id"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"price"`
	Product         *Product        `json:"product,omitempty"`
	Specification   *Specification  `json:"specification,omitempty"`
}

type AddCartItemRequest struct {
	ProductID       string `json:"product_id"`
	SpecificationID string `json:"specification_id"`
	Quantity        int    `json:"quantity"`
}

type WishlistItem struct {
	ID              string         `json:"id"`
	ProductID       string         `json:"product_id"`
	SpecificationID string         `json:"specification_id,omitempty"`
	Product         *Product       `json:"product,omitempty"`
	Specification   *Specification `json:"specification,omitempty"`
}

type AddWishlistItemRequest struct {
	ProductID       string `json:"product_id"`
	SpecificationID string `json:"specification_id,omitempty"`
}

type OrderItem struct {
	ProductID       string          `json:"product_id"`
	SpecificationID string          `json:"specification_id,omitempty"`
	Quantity        int             `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	CouponCode      string          `json:"coupon_code,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	ShippingAddress string          `json:"shipping_address,omitempty"`
	Items           []OrderItem     `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderPage struct {
	Data []Order  `json:"data"`
	Meta PageMeta `json:"meta"`
}

type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	CouponCode      string      `json:"coupon_code,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	ShippingAddress string      `json:"shipping_address"`
	Notes           string      `json:"notes,omitempty"`
}

type UpdateOrderRequest struct {
	ShippingAddress *string `json:"shipping_address,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

type OrderSpecification struct {
	ID              string `json:"id"`
	OrderID         string `json:"order_id"`
	SpecificationID string `json:"specification_id"`
	Quantity        int    `json:"quantity"`
}

type OrderSpecificationInput struct {
	OrderID         string `json:"order_id"`
	SpecificationID string `json:"specification_id"`
	Quantity        int    `json:"quantity"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewInput struct {
	ProductID string `json:"product_id,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type Payment struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type PaymentInput struct {
	OrderID   string          `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

type RechargeRequest struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type Balance struct {
	Balance decimal.Decimal `json:"balance"`
}

// Coupon as stored by the API. DiscountType is "percentage" or "fixed".
type Coupon struct {
	ID            string           `json:"id"`
	Code          string           `json:"code"`
	DiscountType  string           `json:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MinPurchase   *decimal.Decimal `json:"min_purchase,omitempty"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	UsedCount     int              `json:"used_count"`
	ValidFrom     *time.Time       `json:"valid_from,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	IsActive      bool             `json:"is_active"`
}

type CouponInput struct {
	Code          string           `json:"code"`
	DiscountType  string           `json:"discount_type"`
	DiscountValue decimal.Decimal  `json:"discount_value"`
	MinPurchase   *decimal.Decimal `json:"min_purchase,omitempty"`
	UsageLimit    *int             `json:"usage_limit,omitempty"`
	ValidFrom     *time.Time       `json:"valid_from,omitempty"`
	ValidUntil    *time.Time       `json:"valid_until,omitempty"`
	IsActive      bool             `json:"is_active"`
}

type ApplyCouponRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}
