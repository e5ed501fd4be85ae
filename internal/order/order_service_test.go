package order_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go-clothing-store/internal/apiclient"
	autherrors "go-clothing-store/internal/auth/errors"
	"go-clothing-store/internal/cart"
	"go-clothing-store/internal/coupon"
	"go-clothing-store/internal/midtrans"
	cartMock "go-clothing-store/internal/mock/cart"
	midtransMock "go-clothing-store/internal/mock/midtrans"
	orderMock "go-clothing-store/internal/mock/order"
	outboxMock "go-clothing-store/internal/mock/outbox"
	"go-clothing-store/internal/order"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	service  order.Service
	api      *orderMock.MockAPI
	cart     *cartMock.MockService
	midtrans *midtransMock.MockService
	events   *outboxMock.MockRecorder
}

func setupServiceTest(t *testing.T, serviceToken string) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &serviceDeps{
		api:      orderMock.NewMockAPI(ctrl),
		cart:     cartMock.NewMockService(ctrl),
		midtrans: midtransMock.NewMockService(ctrl),
		events:   outboxMock.NewMockRecorder(ctrl),
	}
	d.service = order.NewService(order.Deps{
		API:          d.api,
		Cart:         d.cart,
		Midtrans:     d.midtrans,
		Events:       d.events,
		ServiceToken: serviceToken,
	})
	return d
}

var (
	shopper = session.Session{
		ID:    "sid",
		Token: "tok",
		User:  &session.User{ID: "u-1", Name: "Rani Saputri", Email: "rani@example.com"},
	}
	admin = session.Session{
		ID:    "sid-admin",
		Token: "admin-tok",
		User:  &session.User{ID: "a-1", Role: "admin", IsAdmin: true},
	}
)

func cartWithLines() cart.CartResponse {
	return cart.CartResponse{
		Mode: "remote",
		Items: []cart.Line{
			{Key: "ci-1", ProductID: "p-1", SpecificationID: "s-1", Quantity: 2, UnitPrice: decimal.NewFromInt(100000)},
			{Key: "ci-2", ProductID: "p-2", SpecificationID: "s-7", Quantity: 1, UnitPrice: decimal.NewFromInt(50000)},
		},
		ItemCount: 3,
		Coupon:    &coupon.Coupon{Code: "HEMAT10", Type: coupon.Percentage, Value: decimal.NewFromInt(10)},
		Totals: cart.Totals{
			Subtotal:   decimal.NewFromInt(250000),
			Discount:   decimal.NewFromInt(25000),
			Final:      decimal.NewFromInt(225000),
			Tax:        decimal.Zero,
			GrandTotal: decimal.NewFromInt(225000),
		},
	}
}

func placedOrder() apiclient.Order {
	return apiclient.Order{
		ID:            "o-1",
		UserID:        "u-1",
		Status:        order.StatusPending,
		Subtotal:      decimal.NewFromInt(250000),
		Discount:      decimal.NewFromInt(25000),
		Total:         decimal.NewFromInt(225000),
		CouponCode:    "HEMAT10",
		PaymentMethod: order.PaymentMidtrans,
		Items: []apiclient.OrderItem{
			{ProductID: "p-1", SpecificationID: "s-1", Quantity: 2, Price: decimal.NewFromInt(100000)},
			{ProductID: "p-2", SpecificationID: "s-7", Quantity: 1, Price: decimal.NewFromInt(50000)},
		},
	}
}

func TestService_Checkout(t *testing.T) {
	ctx := context.Background()
	req := order.CheckoutRequest{PaymentMethod: order.PaymentMidtrans, ShippingAddress: " Jl. Merdeka 1, Bandung "}

	t.Run("Midtrans Success", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()

		d.cart.EXPECT().Detail(ctx, shopper).Return(cartWithLines(), nil)
		d.api.EXPECT().CreateOrder(ctx, "tok", gomock.Any()).
			DoAndReturn(func(_ any, _ string, in apiclient.CreateOrderRequest) (apiclient.Order, error) {
				assert.Equal(t, "HEMAT10", in.CouponCode)
				assert.Equal(t, "Jl. Merdeka 1, Bandung", in.ShippingAddress)
				require.Len(t, in.Items, 2)
				assert.Equal(t, "s-1", in.Items[0].SpecificationID)
				assert.Equal(t, 2, in.Items[0].Quantity)
				return o, nil
			})
		d.cart.EXPECT().ClearCart(ctx, shopper).Return(nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPlaced, gomock.Any()).Return(nil)
		d.midtrans.EXPECT().CreateTransactionToken(gomock.Any()).
			DoAndReturn(func(r *midtrans.CreateTransactionRequest) (*midtrans.CreateTransactionResponse, error) {
				assert.True(t, strings.HasPrefix(r.OrderID, "o-1_"))
				assert.Equal(t, int64(225000), r.GrossAmount)
				var sum int64
				for _, it := range r.Items {
					sum += it.Price * int64(it.Qty)
				}
				assert.Equal(t, r.GrossAmount, sum, "item lines add up to gross")
				assert.Equal(t, "Rani", r.Customer.FirstName)
				assert.Equal(t, "Saputri", r.Customer.LastName)
				return &midtrans.CreateTransactionResponse{Token: "snap-1", RedirectURL: "https://pay/snap-1"}, nil
			})

		res, err := d.service.Checkout(ctx, shopper, req)

		require.NoError(t, err)
		assert.Equal(t, "o-1", res.Order.ID)
		assert.Equal(t, "snap-1", res.Payment.SnapToken)
		assert.Equal(t, order.StatusPending, res.Payment.Status)
	})

	t.Run("Balance Success", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.PaymentMethod = order.PaymentBalance

		d.cart.EXPECT().Detail(ctx, shopper).Return(cartWithLines(), nil)
		d.api.EXPECT().CreateOrder(ctx, "tok", gomock.Any()).Return(o, nil)
		d.cart.EXPECT().ClearCart(ctx, shopper).Return(nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPlaced, gomock.Any()).Return(nil)
		d.api.EXPECT().PayWithBalance(ctx, "tok", "o-1").
			Return(apiclient.Payment{ID: "pay-1", Status: "paid", Amount: o.Total}, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPaid, gomock.Any()).Return(nil)

		res, err := d.service.Checkout(ctx, shopper, order.CheckoutRequest{
			PaymentMethod:   order.PaymentBalance,
			ShippingAddress: "Jl. Merdeka 1",
		})

		require.NoError(t, err)
		assert.Equal(t, order.StatusPaid, res.Order.Status)
		assert.Equal(t, "pay-1", res.Payment.PaymentID)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		d := setupServiceTest(t, "")

		d.cart.EXPECT().Detail(ctx, shopper).Return(cartWithLines(), nil)
		d.api.EXPECT().CreateOrder(ctx, "tok", gomock.Any()).Return(placedOrder(), nil)
		d.cart.EXPECT().ClearCart(ctx, shopper).Return(nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPlaced, gomock.Any()).Return(nil)
		d.api.EXPECT().PayWithBalance(ctx, "tok", "o-1").
			Return(apiclient.Payment{}, &apiclient.APIError{Status: http.StatusUnprocessableEntity, Message: "Insufficient balance"})

		_, err := d.service.Checkout(ctx, shopper, order.CheckoutRequest{
			PaymentMethod:   order.PaymentBalance,
			ShippingAddress: "Jl. Merdeka 1",
		})

		assert.ErrorIs(t, err, order.ErrInsufficientBalance)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.cart.EXPECT().Detail(ctx, shopper).Return(cart.CartResponse{Items: []cart.Line{}}, nil)

		_, err := d.service.Checkout(ctx, shopper, req)

		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("Clear Cart Failure Is Not Fatal", func(t *testing.T) {
		d := setupServiceTest(t, "")

		d.cart.EXPECT().Detail(ctx, shopper).Return(cartWithLines(), nil)
		d.api.EXPECT().CreateOrder(ctx, "tok", gomock.Any()).Return(placedOrder(), nil)
		d.cart.EXPECT().ClearCart(ctx, shopper).Return(errors.New("api down"))
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPlaced, gomock.Any()).Return(nil)
		d.midtrans.EXPECT().CreateTransactionToken(gomock.Any()).
			Return(&midtrans.CreateTransactionResponse{Token: "snap-1"}, nil)

		_, err := d.service.Checkout(ctx, shopper, req)

		assert.NoError(t, err)
	})

	t.Run("Create Order Fails Keeps Cart", func(t *testing.T) {
		d := setupServiceTest(t, "")
		apiErr := &apiclient.APIError{Status: http.StatusUnprocessableEntity, Message: "Out of stock"}

		d.cart.EXPECT().Detail(ctx, shopper).Return(cartWithLines(), nil)
		d.api.EXPECT().CreateOrder(ctx, "tok", gomock.Any()).Return(apiclient.Order{}, apiErr)

		_, err := d.service.Checkout(ctx, shopper, req)

		assert.ErrorIs(t, err, apiErr)
	})

	t.Run("Invalid Payment Method", func(t *testing.T) {
		d := setupServiceTest(t, "")

		_, err := d.service.Checkout(ctx, shopper, order.CheckoutRequest{PaymentMethod: "cash", ShippingAddress: "Jl. Merdeka 1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid input")
	})

	t.Run("Anonymous", func(t *testing.T) {
		d := setupServiceTest(t, "")

		_, err := d.service.Checkout(ctx, session.Session{ID: "sid"}, req)

		assert.ErrorIs(t, err, autherrors.ErrNotSignedIn)
	})
}

func TestService_Detail(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Sees Order", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().ListOrderSpecifications(ctx, "tok", "o-1").
			Return([]apiclient.OrderSpecification{{ID: "os-1", OrderID: "o-1", SpecificationID: "s-1", Quantity: 2}}, nil)

		res, err := d.service.Detail(ctx, shopper, "o-1")

		require.NoError(t, err)
		assert.Len(t, res.Specifications, 1)
	})

	t.Run("Other Shopper Gets Not Found", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.UserID = "u-2"
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(o, nil)

		_, err := d.service.Detail(ctx, shopper, "o-1")

		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("Remote Not Found", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-9").Return(apiclient.Order{}, &apiclient.APIError{Status: http.StatusNotFound})

		_, err := d.service.Detail(ctx, shopper, "o-9")

		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})

	t.Run("Specification Failure Degrades", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().ListOrderSpecifications(ctx, "tok", "o-1").Return(nil, errors.New("timeout"))

		res, err := d.service.Detail(ctx, shopper, "o-1")

		require.NoError(t, err)
		assert.NotNil(t, res.Specifications)
		assert.Empty(t, res.Specifications)
	})
}

func TestService_CancelAndComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Cancel Pending", func(t *testing.T) {
		d := setupServiceTest(t, "")
		cancelled := placedOrder()
		cancelled.Status = order.StatusCancelled

		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().CancelOrder(ctx, "tok", "o-1").Return(cancelled, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderCancelled, gomock.Any()).Return(nil)

		res, err := d.service.Cancel(ctx, shopper, "o-1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, res.Status)
	})

	t.Run("Cancel Shipped Rejected", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.Status = order.StatusShipped
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(o, nil)

		_, err := d.service.Cancel(ctx, shopper, "o-1")

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("Complete Shipped", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.Status = order.StatusShipped
		done := o
		done.Status = order.StatusCompleted

		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(o, nil)
		d.api.EXPECT().CompleteOrder(ctx, "tok", "o-1").Return(done, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderStatusSet, gomock.Any()).Return(nil)

		res, err := d.service.Complete(ctx, shopper, "o-1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, res.Status)
	})

	t.Run("Complete Pending Rejected", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)

		_, err := d.service.Complete(ctx, shopper, "o-1")

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestService_ContinuePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues Fresh Token", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)
		d.midtrans.EXPECT().CreateTransactionToken(gomock.Any()).
			Return(&midtrans.CreateTransactionResponse{Token: "snap-2"}, nil)

		res, err := d.service.ContinuePayment(ctx, shopper, "o-1")

		require.NoError(t, err)
		assert.Equal(t, "snap-2", res.Token)
	})

	t.Run("Paid Order", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.Status = order.StatusPaid
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(o, nil)

		_, err := d.service.ContinuePayment(ctx, shopper, "o-1")

		assert.ErrorIs(t, err, order.ErrOrderNotPayable)
	})

	t.Run("Gateway Down", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "tok", "o-1").Return(placedOrder(), nil)
		d.midtrans.EXPECT().CreateTransactionToken(gomock.Any()).Return(nil, midtrans.ErrNotConfigured)

		_, err := d.service.ContinuePayment(ctx, shopper, "o-1")

		assert.ErrorIs(t, err, order.ErrPaymentUnavailable)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to paid", order.StatusPending, order.StatusPaid, true},
		{"paid to processing", order.StatusPaid, order.StatusProcessing, true},
		{"processing to shipped", order.StatusProcessing, order.StatusShipped, true},
		{"shipped to completed", order.StatusShipped, order.StatusCompleted, true},
		{"pending to shipped", order.StatusPending, order.StatusShipped, false},
		{"paid to shipped", order.StatusPaid, order.StatusShipped, false},
		{"completed to cancelled", order.StatusCompleted, order.StatusCancelled, false},
		{"unknown target", order.StatusPaid, "lost", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupServiceTest(t, "")
			o := placedOrder()
			o.Status = tt.from
			d.api.EXPECT().GetOrder(ctx, "admin-tok", "o-1").Return(o, nil)

			if tt.allowed {
				next := o
				next.Status = tt.to
				d.api.EXPECT().UpdateOrderStatus(ctx, "admin-tok", "o-1", tt.to).Return(next, nil)
				d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderStatusSet, gomock.Any()).Return(nil)
			}

			res, err := d.service.UpdateStatus(ctx, admin, "o-1", strings.ToUpper(tt.to))

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, res.Status)
			} else {
				assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
			}
		})
	}

	t.Run("cancel records cancellation", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().GetOrder(ctx, "admin-tok", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().UpdateOrderStatus(ctx, "admin-tok", "o-1", order.StatusCancelled).Return(apiclient.Order{ID: "o-1"}, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderCancelled, gomock.Any()).Return(nil)

		_, err := d.service.UpdateStatus(ctx, admin, "o-1", order.StatusCancelled)

		assert.NoError(t, err)
	})

	t.Run("processing order can be cancelled", func(t *testing.T) {
		d := setupServiceTest(t, "")
		o := placedOrder()
		o.Status = order.StatusProcessing
		d.api.EXPECT().GetOrder(ctx, "admin-tok", "o-1").Return(o, nil)
		d.api.EXPECT().UpdateOrderStatus(ctx, "admin-tok", "o-1", order.StatusCancelled).
			Return(apiclient.Order{ID: "o-1", Status: order.StatusCancelled}, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderCancelled, gomock.Any()).Return(nil)

		res, err := d.service.UpdateStatus(ctx, admin, "o-1", order.StatusCancelled)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, res.Status)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	p := apiclient.ListParams{Page: 1, PerPage: 10}

	t.Run("Own Orders", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().ListUserOrders(ctx, "tok", p).Return(apiclient.OrderPage{}, nil)

		page, err := d.service.List(ctx, shopper, p)

		require.NoError(t, err)
		assert.NotNil(t, page.Data)
	})

	t.Run("Admin Orders", func(t *testing.T) {
		d := setupServiceTest(t, "")
		d.api.EXPECT().ListOrders(ctx, "admin-tok", p).
			Return(apiclient.OrderPage{Data: []apiclient.Order{placedOrder()}}, nil)

		page, err := d.service.ListAdmin(ctx, admin, p)

		require.NoError(t, err)
		assert.Len(t, page.Data, 1)
	})
}

func TestService_HandleMidtransNotification(t *testing.T) {
	ctx := context.Background()
	settled := midtrans.Notification{
		OrderID:           "o-1_1712000000",
		StatusCode:        "200",
		GrossAmount:       "225000.00",
		SignatureKey:      "sig",
		TransactionStatus: "settlement",
		TransactionID:     "trx-1",
	}

	t.Run("Disabled Without Service Token", func(t *testing.T) {
		d := setupServiceTest(t, "")

		err := d.service.HandleMidtransNotification(ctx, settled)

		assert.ErrorIs(t, err, order.ErrNotificationsDisabled)
	})

	t.Run("Bad Signature", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		d.midtrans.EXPECT().VerifySignature(settled).Return(false)

		err := d.service.HandleMidtransNotification(ctx, settled)

		assert.ErrorIs(t, err, order.ErrInvalidSignature)
	})

	t.Run("Settlement Marks Paid", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		d.midtrans.EXPECT().VerifySignature(settled).Return(true)
		d.api.EXPECT().GetOrder(ctx, "svc", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().CreatePayment(ctx, "svc", apiclient.PaymentInput{
			OrderID:   "o-1",
			Amount:    decimal.NewFromInt(225000),
			Method:    order.PaymentMidtrans,
			Status:    order.StatusPaid,
			Reference: "trx-1",
		}).Return(apiclient.Payment{ID: "pay-1"}, nil)
		d.api.EXPECT().UpdateOrderStatus(ctx, "svc", "o-1", order.StatusPaid).Return(apiclient.Order{ID: "o-1"}, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderPaid, gomock.Any()).Return(nil)

		err := d.service.HandleMidtransNotification(ctx, settled)

		assert.NoError(t, err)
	})

	t.Run("Amount Mismatch", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		n := settled
		n.GrossAmount = "1000.00"
		d.midtrans.EXPECT().VerifySignature(n).Return(true)
		d.api.EXPECT().GetOrder(ctx, "svc", "o-1").Return(placedOrder(), nil)

		err := d.service.HandleMidtransNotification(ctx, n)

		assert.ErrorIs(t, err, order.ErrGrossAmountMismatch)
	})

	t.Run("Expired Cancels", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		n := settled
		n.TransactionStatus = "expire"
		d.midtrans.EXPECT().VerifySignature(n).Return(true)
		d.api.EXPECT().GetOrder(ctx, "svc", "o-1").Return(placedOrder(), nil)
		d.api.EXPECT().UpdateOrderStatus(ctx, "svc", "o-1", order.StatusCancelled).Return(apiclient.Order{ID: "o-1"}, nil)
		d.events.EXPECT().Record(ctx, outbox.AggregateOrder, "o-1", outbox.EventOrderCancelled, gomock.Any()).Return(nil)

		err := d.service.HandleMidtransNotification(ctx, n)

		assert.NoError(t, err)
	})

	t.Run("Already Paid Is Ignored", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		o := placedOrder()
		o.Status = order.StatusPaid
		d.midtrans.EXPECT().VerifySignature(settled).Return(true)
		d.api.EXPECT().GetOrder(ctx, "svc", "o-1").Return(o, nil)

		err := d.service.HandleMidtransNotification(ctx, settled)

		assert.NoError(t, err)
	})

	t.Run("Challenged Capture Waits", func(t *testing.T) {
		d := setupServiceTest(t, "svc")
		n := settled
		n.TransactionStatus = "capture"
		n.FraudStatus = "challenge"
		d.midtrans.EXPECT().VerifySignature(n).Return(true)
		d.api.EXPECT().GetOrder(ctx, "svc", "o-1").Return(placedOrder(), nil)

		err := d.service.HandleMidtransNotification(ctx, n)

		assert.NoError(t, err)
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{order.StatusPending, order.StatusPaid, true},
		{order.StatusPending, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusProcessing, true},
		{order.StatusPaid, order.StatusCancelled, true},
		{order.StatusPaid, order.StatusShipped, false},
		{order.StatusProcessing, order.StatusShipped, true},
		{order.StatusProcessing, order.StatusCancelled, true},
		{order.StatusShipped, order.StatusCompleted, true},
		{order.StatusShipped, order.StatusCancelled, false},
		{order.StatusCompleted, order.StatusCancelled, false},
		{order.StatusCancelled, order.StatusPending, false},
		{"unknown", order.StatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, order.CanTransition(tt.from, tt.to))
		})
	}
}
