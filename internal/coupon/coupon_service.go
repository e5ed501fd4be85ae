package coupon

import (
	"context"
	"strings"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/pkg/helper"
	"go-clothing-store/internal/session"
)

//go:generate mockgen -source=coupon_service.go -destination=../mock/coupon/coupon_service_mock.go -package=mock
type API interface {
	ListCoupons(ctx context.Context, token string) ([]apiclient.Coupon, error)
	GetCoupon(ctx context.Context, token, id string) (apiclient.Coupon, error)
	CreateCoupon(ctx context.Context, token string, in apiclient.CouponInput) (apiclient.Coupon, error)
	UpdateCoupon(ctx context.Context, token, id string, in apiclient.CouponInput) (apiclient.Coupon, error)
	DeleteCoupon(ctx context.Context, token, id string) error
}

// Service is the admin side of coupons. Shoppers only ever apply them
// through the cart.
type Service interface {
	List(ctx context.Context, sess session.Session) ([]apiclient.Coupon, error)
	GetByID(ctx context.Context, sess session.Session, id string) (apiclient.Coupon, error)
	Create(ctx context.Context, sess session.Session, req CouponRequest) (apiclient.Coupon, error)
	Update(ctx context.Context, sess session.Session, id string, req CouponRequest) (apiclient.Coupon, error)
	Delete(ctx context.Context, sess session.Session, id string) error
}

type service struct {
	api API
}

func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) List(ctx context.Context, sess session.Session) ([]apiclient.Coupon, error) {
	items, err := s.api.ListCoupons(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []apiclient.Coupon{}
	}
	return items, nil
}

func (s *service) GetByID(ctx context.Context, sess session.Session, id string) (apiclient.Coupon, error) {
	c, err := s.api.GetCoupon(ctx, sess.Token, id)
	return c, mapAPIError(err)
}

func (s *service) Create(ctx context.Context, sess session.Session, req CouponRequest) (apiclient.Coupon, error) {
	in, err := toInput(req)
	if err != nil {
		return apiclient.Coupon{}, err
	}
	c, err := s.api.CreateCoupon(ctx, sess.Token, in)
	return c, mapAPIError(err)
}

func (s *service) Update(ctx context.Context, sess session.Session, id string, req CouponRequest) (apiclient.Coupon, error) {
	in, err := toInput(req)
	if err != nil {
		return apiclient.Coupon{}, err
	}
	c, err := s.api.UpdateCoupon(ctx, sess.Token, id, in)
	return c, mapAPIError(err)
}

func (s *service) Delete(ctx context.Context, sess session.Session, id string) error {
	return mapAPIError(s.api.DeleteCoupon(ctx, sess.Token, id))
}

// toInput normalizes codes to upper case, the form shoppers type them in is
// irrelevant.
func toInput(req CouponRequest) (apiclient.CouponInput, error) {
	t := DiscountType(strings.ToLower(req.DiscountType))
	if !req.DiscountValue.IsPositive() {
		return apiclient.CouponInput{}, ErrInvalidDiscount
	}
	if t == Percentage && req.DiscountValue.GreaterThan(hundred) {
		return apiclient.CouponInput{}, ErrInvalidDiscount
	}
	if req.ValidFrom != nil && req.ValidUntil != nil && !req.ValidUntil.After(*req.ValidFrom) {
		return apiclient.CouponInput{}, ErrInvalidValidity
	}

	return apiclient.CouponInput{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		DiscountType:  string(t),
		DiscountValue: req.DiscountValue,
		MinPurchase:   req.MinPurchase,
		UsageLimit:    req.UsageLimit,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		IsActive:      helper.BoolPtrValue(req.IsActive, true),
	}, nil
}

func mapAPIError(err error) error {
	switch {
	case apiclient.IsNotFound(err):
		return ErrCouponNotFound
	case apiclient.IsConflict(err):
		return ErrDuplicateCode
	}
	return err
}
