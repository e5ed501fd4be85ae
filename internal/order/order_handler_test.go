package order_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/midtrans"
	orderMock "go-clothing-store/internal/mock/order"
	"go-clothing-store/internal/order"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupTestRouter(svc order.Service, sess session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	order.RegisterRoutes(r.Group("/api/v1"), order.NewHandler(svc), nil)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_Checkout(t *testing.T) {
	t.Run("success_checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, shopper)

		svc.EXPECT().
			Checkout(gomock.Any(), shopper, order.CheckoutRequest{PaymentMethod: "midtrans", ShippingAddress: "Jl. Merdeka 1"}).
			Return(order.CheckoutResponse{
				Order:   apiclient.Order{ID: "o-1", Status: order.StatusPending},
				Payment: order.PaymentResponse{Method: "midtrans", SnapToken: "snap-1"},
			}, nil)

		w := serve(r, http.MethodPost, "/api/v1/orders/checkout", `{"paymentMethod":"midtrans","shippingAddress":"Jl. Merdeka 1"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "snap-1")
	})

	t.Run("missing_address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupTestRouter(orderMock.NewMockService(ctrl), shopper)

		w := serve(r, http.MethodPost, "/api/v1/orders/checkout", `{"paymentMethod":"balance"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty_cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, shopper)

		svc.EXPECT().Checkout(gomock.Any(), shopper, gomock.Any()).Return(order.CheckoutResponse{}, order.ErrEmptyCart)

		w := serve(r, http.MethodPost, "/api/v1/orders/checkout", `{"paymentMethod":"balance","shippingAddress":"Jl. Merdeka 1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Your cart is empty")
	})

	t.Run("guest_is_sent_to_signin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupTestRouter(orderMock.NewMockService(ctrl), session.Session{ID: "sid"})

		w := serve(r, http.MethodPost, "/api/v1/orders/checkout", `{}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "/signin")
	})
}

func TestOrderHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := orderMock.NewMockService(ctrl)
	r := setupTestRouter(svc, shopper)

	svc.EXPECT().
		List(gomock.Any(), shopper, apiclient.ListParams{Page: 2, PerPage: 5, Status: "paid"}).
		Return(apiclient.OrderPage{
			Data: []apiclient.Order{{ID: "o-1"}},
			Meta: apiclient.PageMeta{CurrentPage: 2, PerPage: 5, Total: 6},
		}, nil)

	w := serve(r, http.MethodGet, "/api/v1/orders?page=2&limit=5&status=paid", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestOrderHandler_Detail(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, shopper)

		svc.EXPECT().Detail(gomock.Any(), shopper, "o-9").Return(order.OrderDetailResponse{}, order.ErrOrderNotFound)

		w := serve(r, http.MethodGet, "/api/v1/orders/o-9", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestOrderHandler_ContinuePayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := orderMock.NewMockService(ctrl)
	r := setupTestRouter(svc, shopper)

	svc.EXPECT().ContinuePayment(gomock.Any(), shopper, "o-1").
		Return(&midtrans.CreateTransactionResponse{Token: "snap-2", RedirectURL: "https://pay/snap-2"}, nil)

	w := serve(r, http.MethodPost, "/api/v1/orders/o-1/pay", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "snap-2")
}

func TestOrderHandler_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := orderMock.NewMockService(ctrl)
	r := setupTestRouter(svc, shopper)

	svc.EXPECT().Cancel(gomock.Any(), shopper, "o-1").Return(apiclient.Order{}, order.ErrInvalidStatusTransition)

	w := serve(r, http.MethodPatch, "/api/v1/orders/o-1/cancel", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	t.Run("admin_updates_status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, admin)

		svc.EXPECT().UpdateStatus(gomock.Any(), admin, "o-1", "shipped").
			Return(apiclient.Order{ID: "o-1", Status: "shipped"}, nil)

		w := serve(r, http.MethodPatch, "/api/v1/admin/orders/o-1/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("shopper_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := setupTestRouter(orderMock.NewMockService(ctrl), shopper)

		w := serve(r, http.MethodPatch, "/api/v1/admin/orders/o-1/status", `{"status":"shipped"}`)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestOrderHandler_MidtransNotification(t *testing.T) {
	body := `{"order_id":"o-1_1712","status_code":"200","gross_amount":"225000.00","signature_key":"sig","transaction_status":"settlement"}`

	t.Run("accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, session.Session{ID: "sid"})

		svc.EXPECT().HandleMidtransNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, n midtrans.Notification) error {
				assert.Equal(t, "o-1_1712", n.OrderID)
				assert.Equal(t, "settlement", n.TransactionStatus)
				return nil
			})

		w := serve(r, http.MethodPost, "/api/v1/payments/midtrans/notification", body)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad_signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := orderMock.NewMockService(ctrl)
		r := setupTestRouter(svc, session.Session{ID: "sid"})

		svc.EXPECT().HandleMidtransNotification(gomock.Any(), gomock.Any()).Return(order.ErrInvalidSignature)

		w := serve(r, http.MethodPost, "/api/v1/payments/midtrans/notification", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
