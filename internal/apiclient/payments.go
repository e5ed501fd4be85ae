package apiclient

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

func (c *Client) ListPayments(ctx context.Context, token string) ([]Payment, error) {
	var out []Payment
	err := c.do(ctx, request{method: http.MethodGet, path: "/payments", token: token}, &out)
	return out, err
}

func (c *Client) GetPayment(ctx context.Context, token, id string) (Payment, error) {
	var out Payment
	err := c.do(ctx, request{method: http.MethodGet, path: resourcePath("/payments", id), token: token}, &out)
	return out, err
}

func (c *Client) CreatePayment(ctx context.Context, token string, in PaymentInput) (Payment, error) {
	var out Payment
	err := c.do(ctx, request{method: http.MethodPost, path: "/payments", token: token, body: in}, &out)
	return out, err
}

func (c *Client) UpdatePayment(ctx context.Context, token, id string, in PaymentInput) (Payment, error) {
	var out Payment
	err := c.do(ctx, request{method: http.MethodPut, path: resourcePath("/payments", id), token: token, body: in}, &out)
	return out, err
}

func (c *Client) DeletePayment(ctx context.Context, token, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: resourcePath("/payments", id), token: token}, nil)
}

func (c *Client) PayWithBalance(ctx context.Context, token, orderID string) (Payment, error) {
	var out Payment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/payments/balance",
		token:  token,
		body:   map[string]string{"order_id": orderID},
	}, &out)
	return out, err
}

func (c *Client) RequestRecharge(ctx context.Context, token string, amount decimal.Decimal) (RechargeRequest, error) {
	var out RechargeRequest
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/payments/recharge",
		token:  token,
		body:   map[string]decimal.Decimal{"amount": amount},
	}, &out)
	return out, err
}

func (c *Client) ApproveRecharge(ctx context.Context, token, id string) (RechargeRequest, error) {
	var out RechargeRequest
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   resourcePath("/payments/recharge", id) + "/approve",
		token:  token,
	}, &out)
	return out, err
}
