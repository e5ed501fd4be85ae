package coupon_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/coupon"
	couponMock "go-clothing-store/internal/mock/coupon"
	"go-clothing-store/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var admin = session.Session{ID: "sid", Token: "tok", User: &session.User{ID: "u-a", Role: "admin"}}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Normalizes Code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := couponMock.NewMockAPI(ctrl)
		svc := coupon.NewService(api)

		api.EXPECT().CreateCoupon(ctx, "tok", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, in apiclient.CouponInput) (apiclient.Coupon, error) {
				assert.Equal(t, "SAVE10", in.Code)
				assert.Equal(t, "percentage", in.DiscountType)
				assert.True(t, in.IsActive)
				return apiclient.Coupon{ID: "cp-1", Code: in.Code}, nil
			})

		c, err := svc.Create(ctx, admin, coupon.CouponRequest{
			Code:          " save10 ",
			DiscountType:  "Percentage",
			DiscountValue: decimal.NewFromInt(10),
		})

		require.NoError(t, err)
		assert.Equal(t, "cp-1", c.ID)
	})

	t.Run("Percentage Above 100", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := coupon.NewService(couponMock.NewMockAPI(ctrl))

		_, err := svc.Create(ctx, admin, coupon.CouponRequest{
			Code:          "HALF",
			DiscountType:  "percentage",
			DiscountValue: decimal.NewFromInt(150),
		})

		assert.ErrorIs(t, err, coupon.ErrInvalidDiscount)
	})

	t.Run("Validity Window Reversed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := coupon.NewService(couponMock.NewMockAPI(ctrl))
		from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		until := from.Add(-time.Hour)

		_, err := svc.Create(ctx, admin, coupon.CouponRequest{
			Code:          "LATE",
			DiscountType:  "fixed",
			DiscountValue: decimal.NewFromInt(5),
			ValidFrom:     &from,
			ValidUntil:    &until,
		})

		assert.ErrorIs(t, err, coupon.ErrInvalidValidity)
	})

	t.Run("Duplicate Code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := couponMock.NewMockAPI(ctrl)
		svc := coupon.NewService(api)

		api.EXPECT().CreateCoupon(ctx, "tok", gomock.Any()).
			Return(apiclient.Coupon{}, &apiclient.APIError{Status: http.StatusConflict})

		_, err := svc.Create(ctx, admin, coupon.CouponRequest{
			Code:          "SAVE10",
			DiscountType:  "fixed",
			DiscountValue: decimal.NewFromInt(10),
		})

		assert.ErrorIs(t, err, coupon.ErrDuplicateCode)
	})
}

func TestService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := couponMock.NewMockAPI(ctrl)
	svc := coupon.NewService(api)
	ctx := context.Background()

	api.EXPECT().DeleteCoupon(ctx, "tok", "cp-x").Return(&apiclient.APIError{Status: http.StatusNotFound})

	assert.ErrorIs(t, svc.Delete(ctx, admin, "cp-x"), coupon.ErrCouponNotFound)
}
