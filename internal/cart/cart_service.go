package cart

import (
	"context"
	"strings"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/coupon"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddToCart(ctx context.Context, sess session.Session, req AddItemRequest) (CartResponse, error)
	UpdateQuantity(ctx context.Context, sess session.Session, key string, qty int) (CartResponse, error)
	RemoveFromCart(ctx context.Context, sess session.Session, key string) (CartResponse, error)

	// ApplyCoupon reports false, leaving the cart untouched, when the store
	// refuses the code.
	ApplyCoupon(ctx context.Context, sess session.Session, code string) (bool, error)
	RemoveCoupon(ctx context.Context, sess session.Session) error

	ClearCart(ctx context.Context, sess session.Session) error
	Detail(ctx context.Context, sess session.Session) (CartResponse, error)
	Count(ctx context.Context, sess session.Session) (int, error)
}

type Deps struct {
	Guest    GuestRepository
	Coupons  CouponRepository
	API      RemoteAPI
	Resolver SpecResolver
	Events   outbox.Recorder
	TaxRate  decimal.Decimal
	Logger   *zap.Logger
}

type service struct {
	guest    GuestRepository
	coupons  CouponRepository
	api      RemoteAPI
	resolver SpecResolver
	events   outbox.Recorder
	taxRate  decimal.Decimal
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(d Deps) Service {
	events := d.Events
	if events == nil {
		events = outbox.NopRecorder{}
	}
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		guest:    d.Guest,
		coupons:  d.Coupons,
		api:      d.API,
		resolver: d.Resolver,
		events:   events,
		taxRate:  d.TaxRate,
		validate: validator.New(),
		logger:   logger.Named("cart.service"),
		now:      time.Now,
	}
}

// ========================
// helpers
// ========================

func (s *service) storeFor(sess session.Session) Store {
	if sess.IsAuthenticated() {
		return &remoteStore{token: sess.Token, api: s.api, resolver: s.resolver}
	}
	return &localStore{sessionID: sess.ID, repo: s.guest, api: s.api}
}

// owner keys the active coupon. A signed-in shopper's coupon follows the
// account the way the remote cart does.
func owner(sess session.Session) string {
	if sess.IsAuthenticated() {
		return "user:" + sess.User.ID
	}
	return "guest:" + sess.ID
}

func (s *service) emit(ctx context.Context, sess session.Session, eventType string, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["mode"] = sess.State().String()
	if sess.IsAuthenticated() {
		payload["user_id"] = sess.User.ID
	}
	// failures are logged by the recorder and never fail the cart operation
	_ = s.events.Record(ctx, outbox.AggregateCart, sess.ID, eventType, payload)
}

func (s *service) activeCoupon(ctx context.Context, sess session.Session) *coupon.Coupon {
	c, err := s.coupons.Get(ctx, owner(sess))
	if err != nil {
		s.logger.Warn("load active coupon", zap.String("session_id", sess.ID), zap.Error(err))
		return nil
	}
	return c
}

func (s *service) build(ctx context.Context, sess session.Session, lines []Line) CartResponse {
	c := s.activeCoupon(ctx, sess)
	if lines == nil {
		lines = []Line{}
	}
	return CartResponse{
		Mode:      sess.State().String(),
		Items:     lines,
		ItemCount: unitCount(lines),
		Coupon:    c,
		Totals:    ComputeTotals(lines, c, s.taxRate),
	}
}

// ========================
// operations
// ========================

func (s *service) AddToCart(ctx context.Context, sess session.Session, req AddItemRequest) (CartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartResponse{}, MapValidationError(err)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := s.storeFor(sess).Add(ctx, req); err != nil {
		return CartResponse{}, err
	}

	s.emit(ctx, sess, outbox.EventCartItemAdded, map[string]any{
		"product_id": req.ProductID,
		"size":       req.Size,
		"color":      req.Color,
		"quantity":   req.Quantity,
	})
	return s.Detail(ctx, sess)
}

// UpdateQuantity treats anything below 1 as a removal.
func (s *service) UpdateQuantity(ctx context.Context, sess session.Session, key string, qty int) (CartResponse, error) {
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		return s.RemoveFromCart(ctx, sess, key)
	}
	if qty > maxQuantity {
		return CartResponse{}, ErrInvalidQty
	}

	if err := s.storeFor(sess).SetQuantity(ctx, key, qty); err != nil {
		return CartResponse{}, err
	}

	s.emit(ctx, sess, outbox.EventCartItemUpdated, map[string]any{"key": key, "quantity": qty})
	return s.Detail(ctx, sess)
}

func (s *service) RemoveFromCart(ctx context.Context, sess session.Session, key string) (CartResponse, error) {
	if err := s.storeFor(sess).Remove(ctx, key); err != nil {
		return CartResponse{}, err
	}

	s.emit(ctx, sess, outbox.EventCartItemRemoved, map[string]any{"key": key})
	return s.Detail(ctx, sess)
}

func (s *service) ApplyCoupon(ctx context.Context, sess session.Session, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	lines, err := s.storeFor(sess).Lines(ctx)
	if err != nil {
		return false, err
	}
	subtotal := GetTotalPrice(lines)

	res, err := s.api.ApplyCoupon(ctx, sess.Token, apiclient.ApplyCouponRequest{Code: code, Subtotal: subtotal})
	if err != nil {
		if apiclient.IsRejected(err) || (!sess.IsAuthenticated() && apiclient.IsUnauthorized(err)) {
			s.logger.Debug("coupon refused", zap.String("code", code), zap.Error(err))
			return false, nil
		}
		return false, err
	}

	c := coupon.FromAPI(res)
	if c.Code == "" {
		c.Code = code
	}
	if !c.Applicable(subtotal, s.now()) {
		// the store API decides; a local mismatch usually means clock skew
		s.logger.Warn("accepted coupon looks inapplicable locally",
			zap.String("code", c.Code), zap.String("subtotal", subtotal.String()))
	}

	if err := s.coupons.Set(ctx, owner(sess), c); err != nil {
		return false, err
	}

	s.emit(ctx, sess, outbox.EventCouponApplied, map[string]any{"code": c.Code, "subtotal": subtotal.String()})
	return true, nil
}

func (s *service) RemoveCoupon(ctx context.Context, sess session.Session) error {
	if err := s.coupons.Delete(ctx, owner(sess)); err != nil {
		return err
	}
	s.emit(ctx, sess, outbox.EventCouponRemoved, nil)
	return nil
}

func (s *service) ClearCart(ctx context.Context, sess session.Session) error {
	if err := s.storeFor(sess).Clear(ctx); err != nil {
		return err
	}
	if err := s.coupons.Delete(ctx, owner(sess)); err != nil {
		return err
	}

	s.emit(ctx, sess, outbox.EventCartCleared, nil)
	return nil
}

func (s *service) Detail(ctx context.Context, sess session.Session) (CartResponse, error) {
	lines, err := s.storeFor(sess).Lines(ctx)
	if err != nil {
		return CartResponse{}, err
	}
	return s.build(ctx, sess, lines), nil
}

func (s *service) Count(ctx context.Context, sess session.Session) (int, error) {
	lines, err := s.storeFor(sess).Lines(ctx)
	if err != nil {
		return 0, err
	}
	return unitCount(lines), nil
}
