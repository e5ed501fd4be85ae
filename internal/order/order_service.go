package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-clothing-store/internal/apiclient"
	autherrors "go-clothing-store/internal/auth/errors"
	"go-clothing-store/internal/cart"
	"go-clothing-store/internal/midtrans"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type API interface {
	CreateOrder(ctx context.Context, token string, req apiclient.CreateOrderRequest) (apiclient.Order, error)
	GetOrder(ctx context.Context, token, id string) (apiclient.Order, error)
	ListOrders(ctx context.Context, token string, p apiclient.ListParams) (apiclient.OrderPage, error)
	ListUserOrders(ctx context.Context, token string, p apiclient.ListParams) (apiclient.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, token, id, status string) (apiclient.Order, error)
	CancelOrder(ctx context.Context, token, id string) (apiclient.Order, error)
	CompleteOrder(ctx context.Context, token, id string) (apiclient.Order, error)
	ListOrderSpecifications(ctx context.Context, token, orderID string) ([]apiclient.OrderSpecification, error)
	PayWithBalance(ctx context.Context, token, orderID string) (apiclient.Payment, error)
	CreatePayment(ctx context.Context, token string, in apiclient.PaymentInput) (apiclient.Payment, error)
}

type Service interface {
	// Customer actions
	Checkout(ctx context.Context, sess session.Session, req CheckoutRequest) (CheckoutResponse, error)
	ContinuePayment(ctx context.Context, sess session.Session, orderID string) (*midtrans.CreateTransactionResponse, error)
	List(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.OrderPage, error)
	Detail(ctx context.Context, sess session.Session, orderID string) (OrderDetailResponse, error)
	Cancel(ctx context.Context, sess session.Session, orderID string) (apiclient.Order, error)
	Complete(ctx context.Context, sess session.Session, orderID string) (apiclient.Order, error)

	// Admin actions
	ListAdmin(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.OrderPage, error)
	UpdateStatus(ctx context.Context, sess session.Session, orderID, nextStatus string) (apiclient.Order, error)

	HandleMidtransNotification(ctx context.Context, n midtrans.Notification) error
}

type Deps struct {
	API      API
	Cart     cart.Service
	Midtrans midtrans.Service
	Events   outbox.Recorder
	// ServiceToken authorizes notification handling, which has no shopper.
	ServiceToken string
	Logger       *zap.Logger
}

type service struct {
	api          API
	cart         cart.Service
	midtrans     midtrans.Service
	events       outbox.Recorder
	serviceToken string
	validate     *validator.Validate
	logger       *zap.Logger
	now          func() time.Time
}

// statusTransitions lists what an admin may move an order to.
var statusTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusPaid:      {},
		StatusCancelled: {},
	},
	StatusPaid: {
		StatusProcessing: {},
		StatusCancelled:  {},
	},
	StatusProcessing: {
		StatusShipped:   {},
		StatusCancelled: {},
	},
	StatusShipped: {
		StatusCompleted: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

func NewService(deps Deps) Service {
	if deps.API == nil {
		panic("order api cannot be nil")
	}
	if deps.Cart == nil {
		panic("cart service cannot be nil")
	}
	if deps.Midtrans == nil {
		panic("midtrans service cannot be nil")
	}
	if deps.Events == nil {
		deps.Events = outbox.NopRecorder{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		api:          deps.API,
		cart:         deps.Cart,
		midtrans:     deps.Midtrans,
		events:       deps.Events,
		serviceToken: strings.TrimSpace(deps.ServiceToken),
		validate:     validator.New(),
		logger:       deps.Logger.Named("order.service"),
		now:          time.Now,
	}
}

func CanTransition(from, to string) bool {
	next, ok := statusTransitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// Checkout turns the signed-in shopper's cart into an order and starts its
// payment. The cart is cleared once the order exists, even when the payment
// step fails, since the order keeps the lines.
func (s *service) Checkout(ctx context.Context, sess session.Session, req CheckoutRequest) (CheckoutResponse, error) {
	if !sess.IsAuthenticated() {
		return CheckoutResponse{}, autherrors.ErrNotSignedIn
	}
	if err := s.validate.Struct(req); err != nil {
		return CheckoutResponse{}, cart.MapValidationError(err)
	}

	logger := s.logger.With(zap.String("user_id", sess.User.ID))

	detail, err := s.cart.Detail(ctx, sess)
	if err != nil {
		logger.Error("failed to fetch cart detail", zap.Error(err))
		return CheckoutResponse{}, err
	}
	if len(detail.Items) == 0 {
		return CheckoutResponse{}, ErrEmptyCart
	}

	items := make([]apiclient.OrderItem, 0, len(detail.Items))
	for _, line := range detail.Items {
		items = append(items, apiclient.OrderItem{
			ProductID:       line.ProductID,
			SpecificationID: line.SpecificationID,
			Quantity:        line.Quantity,
			Price:           line.UnitPrice,
		})
	}

	createReq := apiclient.CreateOrderRequest{
		Items:           items,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
		Notes:           strings.TrimSpace(req.Notes),
	}
	if detail.Coupon != nil {
		createReq.CouponCode = detail.Coupon.Code
	}

	order, err := s.api.CreateOrder(ctx, sess.Token, createReq)
	if err != nil {
		logger.Error("failed to create order", zap.Error(err))
		return CheckoutResponse{}, err
	}
	logger = logger.With(zap.String("order_id", order.ID))

	if err := s.cart.ClearCart(ctx, sess); err != nil {
		logger.Warn("failed to clear cart after checkout", zap.Error(err))
	}

	total := order.Total
	if total.IsZero() {
		total = detail.Totals.GrandTotal
	}

	_ = s.events.Record(ctx, outbox.AggregateOrder, order.ID, outbox.EventOrderPlaced, map[string]any{
		"order_id":       order.ID,
		"user_id":        sess.User.ID,
		"total":          total.StringFixed(2),
		"payment_method": req.PaymentMethod,
		"coupon_code":    createReq.CouponCode,
		"items":          len(items),
	})

	res := CheckoutResponse{Order: order}

	switch req.PaymentMethod {
	case PaymentBalance:
		payment, err := s.api.PayWithBalance(ctx, sess.Token, order.ID)
		if err != nil {
			logger.Warn("balance payment failed", zap.Error(err))
			if apiclient.IsRejected(err) {
				return CheckoutResponse{}, ErrInsufficientBalance.WithDetails(map[string]string{"orderId": order.ID})
			}
			return CheckoutResponse{}, err
		}
		res.Order.Status = StatusPaid
		res.Payment = PaymentResponse{
			Method:    PaymentBalance,
			Status:    payment.Status,
			PaymentID: payment.ID,
		}
		s.recordPaid(ctx, order.ID, PaymentBalance, payment.Amount)

	case PaymentMidtrans:
		snapRes, err := s.snapToken(order, total, sess.User)
		if err != nil {
			logger.Error("failed to create midtrans transaction", zap.Error(err))
			return CheckoutResponse{}, ErrPaymentUnavailable.WithDetails(map[string]string{"orderId": order.ID})
		}
		res.Payment = PaymentResponse{
			Method:      PaymentMidtrans,
			Status:      StatusPending,
			SnapToken:   snapRes.Token,
			RedirectURL: snapRes.RedirectURL,
		}
	}

	logger.Info("checkout success", zap.String("payment_method", req.PaymentMethod))
	return res, nil
}

// ContinuePayment issues a fresh Snap token for a pending online order.
func (s *service) ContinuePayment(ctx context.Context, sess session.Session, orderID string) (*midtrans.CreateTransactionResponse, error) {
	order, err := s.ownedOrder(ctx, sess, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != StatusPending {
		return nil, ErrOrderNotPayable
	}
	if order.PaymentMethod != "" && order.PaymentMethod != PaymentMidtrans {
		return nil, ErrOrderNotPayable
	}

	res, err := s.snapToken(order, order.Total, sess.User)
	if err != nil {
		s.logger.Error("failed to create midtrans transaction",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		return nil, ErrPaymentUnavailable
	}
	return res, nil
}

func (s *service) List(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.OrderPage, error) {
	if !sess.IsAuthenticated() {
		return apiclient.OrderPage{}, autherrors.ErrNotSignedIn
	}
	page, err := s.api.ListUserOrders(ctx, sess.Token, p)
	if err != nil {
		return apiclient.OrderPage{}, err
	}
	if page.Data == nil {
		page.Data = []apiclient.Order{}
	}
	return page, nil
}

func (s *service) Detail(ctx context.Context, sess session.Session, orderID string) (OrderDetailResponse, error) {
	order, err := s.ownedOrder(ctx, sess, orderID)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	specs, err := s.api.ListOrderSpecifications(ctx, sess.Token, order.ID)
	if err != nil {
		s.logger.Warn("failed to load order specifications",
			zap.String("order_id", order.ID),
			zap.Error(err),
		)
		specs = nil
	}
	if specs == nil {
		specs = []apiclient.OrderSpecification{}
	}

	return OrderDetailResponse{Order: order, Specifications: specs}, nil
}

// Cancel is open to the owner while the order still awaits payment.
func (s *service) Cancel(ctx context.Context, sess session.Session, orderID string) (apiclient.Order, error) {
	order, err := s.ownedOrder(ctx, sess, orderID)
	if err != nil {
		return apiclient.Order{}, err
	}
	if order.Status != StatusPending {
		return apiclient.Order{}, ErrInvalidStatusTransition
	}

	cancelled, err := s.api.CancelOrder(ctx, sess.Token, order.ID)
	if err != nil {
		return apiclient.Order{}, notFound(err)
	}

	_ = s.events.Record(ctx, outbox.AggregateOrder, order.ID, outbox.EventOrderCancelled, map[string]any{
		"order_id": order.ID,
		"user_id":  sess.User.ID,
		"reason":   "customer",
	})
	return cancelled, nil
}

// Complete confirms receipt of a shipped order.
func (s *service) Complete(ctx context.Context, sess session.Session, orderID string) (apiclient.Order, error) {
	order, err := s.ownedOrder(ctx, sess, orderID)
	if err != nil {
		return apiclient.Order{}, err
	}
	if !CanTransition(order.Status, StatusCompleted) {
		return apiclient.Order{}, ErrInvalidStatusTransition
	}

	completed, err := s.api.CompleteOrder(ctx, sess.Token, order.ID)
	if err != nil {
		return apiclient.Order{}, notFound(err)
	}
	s.recordStatus(ctx, order.ID, order.Status, StatusCompleted)
	return completed, nil
}

func (s *service) ListAdmin(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.OrderPage, error) {
	page, err := s.api.ListOrders(ctx, sess.Token, p)
	if err != nil {
		return apiclient.OrderPage{}, err
	}
	if page.Data == nil {
		page.Data = []apiclient.Order{}
	}
	return page, nil
}

func (s *service) UpdateStatus(ctx context.Context, sess session.Session, orderID, nextStatus string) (apiclient.Order, error) {
	nextStatus = strings.ToLower(strings.TrimSpace(nextStatus))

	order, err := s.api.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return apiclient.Order{}, notFound(err)
	}
	if !CanTransition(order.Status, nextStatus) {
		return apiclient.Order{}, ErrInvalidStatusTransition
	}

	updated, err := s.api.UpdateOrderStatus(ctx, sess.Token, order.ID, nextStatus)
	if err != nil {
		return apiclient.Order{}, notFound(err)
	}

	if nextStatus == StatusCancelled {
		_ = s.events.Record(ctx, outbox.AggregateOrder, order.ID, outbox.EventOrderCancelled, map[string]any{
			"order_id": order.ID,
			"user_id":  order.UserID,
			"reason":   "admin",
		})
	} else {
		s.recordStatus(ctx, order.ID, order.Status, nextStatus)
	}
	return updated, nil
}

// HandleMidtransNotification settles or voids a pending order from a
// Midtrans status notification. Repeated notifications are no-ops.
func (s *service) HandleMidtransNotification(ctx context.Context, n midtrans.Notification) error {
	if s.serviceToken == "" {
		return ErrNotificationsDisabled
	}
	if !s.midtrans.VerifySignature(n) {
		return ErrInvalidSignature
	}

	orderID := orderIDFromReference(n.OrderID)
	logger := s.logger.With(
		zap.String("order_id", orderID),
		zap.String("transaction_status", n.TransactionStatus),
	)

	order, err := s.api.GetOrder(ctx, s.serviceToken, orderID)
	if err != nil {
		return notFound(err)
	}
	if order.Status != StatusPending {
		logger.Info("notification ignored", zap.String("order_status", order.Status))
		return nil
	}

	switch strings.ToLower(n.TransactionStatus) {
	case "settlement", "capture":
		if strings.EqualFold(n.TransactionStatus, "capture") && !strings.EqualFold(n.FraudStatus, "accept") {
			return nil
		}

		gross, err := decimal.NewFromString(n.GrossAmount)
		if err != nil || !gross.Equal(order.Total.Round(0)) {
			logger.Warn("gross amount mismatch",
				zap.String("gross_amount", n.GrossAmount),
				zap.String("order_total", order.Total.StringFixed(2)),
			)
			return ErrGrossAmountMismatch
		}

		if _, err := s.api.CreatePayment(ctx, s.serviceToken, apiclient.PaymentInput{
			OrderID:   order.ID,
			Amount:    order.Total,
			Method:    PaymentMidtrans,
			Status:    StatusPaid,
			Reference: n.TransactionID,
		}); err != nil {
			logger.Error("failed to record payment", zap.Error(err))
			return err
		}
		if _, err := s.api.UpdateOrderStatus(ctx, s.serviceToken, order.ID, StatusPaid); err != nil {
			logger.Error("failed to mark order paid", zap.Error(err))
			return err
		}
		s.recordPaid(ctx, order.ID, PaymentMidtrans, order.Total)
		logger.Info("order paid")

	case "expire", "cancel", "deny":
		if _, err := s.api.UpdateOrderStatus(ctx, s.serviceToken, order.ID, StatusCancelled); err != nil {
			logger.Error("failed to cancel order", zap.Error(err))
			return err
		}
		_ = s.events.Record(ctx, outbox.AggregateOrder, order.ID, outbox.EventOrderCancelled, map[string]any{
			"order_id": order.ID,
			"user_id":  order.UserID,
			"reason":   "payment_" + strings.ToLower(n.TransactionStatus),
		})
		logger.Info("order cancelled by payment gateway")
	}

	return nil
}

// ========================
// helpers
// ========================

// ownedOrder hides orders of other shoppers behind not-found. Admins see all.
func (s *service) ownedOrder(ctx context.Context, sess session.Session, orderID string) (apiclient.Order, error) {
	if !sess.IsAuthenticated() {
		return apiclient.Order{}, autherrors.ErrNotSignedIn
	}

	order, err := s.api.GetOrder(ctx, sess.Token, orderID)
	if err != nil {
		return apiclient.Order{}, notFound(err)
	}
	if order.UserID != "" && order.UserID != sess.User.ID && !sess.IsAdmin() {
		return apiclient.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *service) snapToken(order apiclient.Order, total decimal.Decimal, user *session.User) (*midtrans.CreateTransactionResponse, error) {
	gross := total.Round(0).IntPart()

	items := make([]midtrans.ItemDetail, 0, len(order.Items)+1)
	var sum int64
	for _, item := range order.Items {
		price := item.Price.Round(0).IntPart()
		items = append(items, midtrans.ItemDetail{
			ID:    item.ProductID,
			Price: price,
			Qty:   int32(item.Quantity),
			Name:  truncate("Product "+item.ProductID, 50),
		})
		sum += price * int64(item.Quantity)
	}
	// discount and tax land in one line so item totals add up to gross
	if len(items) > 0 && sum != gross {
		items = append(items, midtrans.ItemDetail{
			ID:    "ADJUSTMENT",
			Price: gross - sum,
			Qty:   1,
			Name:  "Discount and tax",
		})
	}

	req := &midtrans.CreateTransactionRequest{
		OrderID:     fmt.Sprintf("%s_%d", order.ID, s.now().Unix()),
		GrossAmount: gross,
		Items:       items,
	}
	if user != nil {
		first, last, _ := strings.Cut(strings.TrimSpace(user.Name), " ")
		req.Customer = &midtrans.CustomerDetails{
			FirstName: first,
			LastName:  last,
			Email:     user.Email,
		}
	}

	res, err := s.midtrans.CreateTransactionToken(req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, errors.New("empty midtrans response")
	}
	return res, nil
}

func (s *service) recordPaid(ctx context.Context, orderID, method string, amount decimal.Decimal) {
	_ = s.events.Record(ctx, outbox.AggregateOrder, orderID, outbox.EventOrderPaid, map[string]any{
		"order_id":       orderID,
		"payment_method": method,
		"amount":         amount.StringFixed(2),
	})
}

func (s *service) recordStatus(ctx context.Context, orderID, from, to string) {
	_ = s.events.Record(ctx, outbox.AggregateOrder, orderID, outbox.EventOrderStatusSet, map[string]any{
		"order_id": orderID,
		"from":     from,
		"to":       to,
	})
}

// orderIDFromReference strips the "_<unix>" suffix Snap order ids carry.
func orderIDFromReference(ref string) string {
	i := strings.LastIndex(ref, "_")
	if i <= 0 {
		return ref
	}
	if _, err := strconv.ParseInt(ref[i+1:], 10, 64); err != nil {
		return ref
	}
	return ref[:i]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func notFound(err error) error {
	if apiclient.IsNotFound(err) {
		return ErrOrderNotFound
	}
	return err
}
