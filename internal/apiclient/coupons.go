package apiclient

import (
	"context"
	"net/http"
)

func (c *Client) ListCoupons(ctx context.Context, token string) ([]Coupon, error) {
	var out []Coupon
	err := c.do(ctx, request{method: http.MethodGet, path: "/coupons", token: token}, &out)
	return out, err
}

func (c *Client) GetCoupon(ctx context.Context, token, id string) (Coupon, error) {
	var out Coupon
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/coupons", id), token: token}, &out)
	return out, err
}

func (c *Client) CreateCoupon(ctx context.Context, token string, in CouponInput) (Coupon, error) {
	var out Coupon
	err := c.do(ctx, request{method: http.MethodPost, path: "/coupons", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdateCoupon(ctx context.Context, token, id string, in CouponInput) (Coupon, error) {
	var out Coupon
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/coupons", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeleteCoupon(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/coupons", id), token: token}, nil)
}

// ApplyCoupon asks the API to validate code against subtotal. Any 4xx answer
// means the coupon was refused (unknown, expired, minimum not met).
func (c *Client) ApplyCoupon(ctx context.Context, token string, req ApplyCouponRequest) (Coupon, error) {
	var out Coupon
	err := c.do(ctx, request{method: http.MethodPost, path: "/coupons/apply", token: token, body: req}, &out)
	return out, err
}
