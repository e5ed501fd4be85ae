package customer

import (
	"context"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/pkg/helper"
	"go-clothing-store/internal/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const minPasswordLength = 8

//go:generate mockgen -source=customer_service.go -destination=../mock/customer/customer_service_mock.go -package=mock
type API interface {
	GetProfile(ctx context.Context, token string) (apiclient.User, error)
	UpdateProfile(ctx context.Context, token string, req apiclient.UpdateProfileRequest) (apiclient.User, error)
	UpdatePassword(ctx context.Context, token string, req apiclient.UpdatePasswordRequest) error
	GetBalance(ctx context.Context, token string) (apiclient.Balance, error)
	RequestRecharge(ctx context.Context, token string, amount decimal.Decimal) (apiclient.RechargeRequest, error)
	ListRechargeRequests(ctx context.Context, token string) ([]apiclient.RechargeRequest, error)
	ApproveRecharge(ctx context.Context, token, id string) (apiclient.RechargeRequest, error)
	ListUsers(ctx context.Context, token string, p apiclient.ListParams) (apiclient.UserPage, error)
	GetUser(ctx context.Context, token, id string) (apiclient.User, error)
	UpdateUser(ctx context.Context, token, id string, req apiclient.UpdateUserRequest) (apiclient.User, error)
	DeleteUser(ctx context.Context, token, id string) error
}

// ProfileCache keeps the session's cached profile in step with account edits.
type ProfileCache interface {
	UpdateProfile(ctx context.Context, s session.Session, u session.User) (session.Session, error)
}

type Service interface {
	GetProfile(ctx context.Context, sess session.Session) (CustomerResponse, error)
	UpdateProfile(ctx context.Context, sess session.Session, req UpdateProfileRequest) (CustomerResponse, error)
	UpdatePassword(ctx context.Context, sess session.Session, req UpdatePasswordRequest) error
	GetBalance(ctx context.Context, sess session.Session) (BalanceResponse, error)
	RequestRecharge(ctx context.Context, sess session.Session, req RechargeRequest) (apiclient.RechargeRequest, error)
	ListRecharges(ctx context.Context, sess session.Session) ([]apiclient.RechargeRequest, error)

	ListUsers(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.UserPage, error)
	GetUser(ctx context.Context, sess session.Session, id string) (CustomerResponse, error)
	UpdateUser(ctx context.Context, sess session.Session, id string, req UpdateUserRequest) (CustomerResponse, error)
	DeleteUser(ctx context.Context, sess session.Session, id string) error
	ApproveRecharge(ctx context.Context, sess session.Session, id string) (apiclient.RechargeRequest, error)
}

type service struct {
	api      API
	profiles ProfileCache
	events   outbox.Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(api API, profiles ProfileCache, events outbox.Recorder, logger *zap.Logger) Service {
	if events == nil {
		events = outbox.NopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:      api,
		profiles: profiles,
		events:   events,
		logger:   logger.Named("customer.service"),
		now:      time.Now,
	}
}

func (s *service) GetProfile(ctx context.Context, sess session.Session) (CustomerResponse, error) {
	u, err := s.api.GetProfile(ctx, sess.Token)
	if err != nil {
		return CustomerResponse{}, err
	}
	s.refreshCache(ctx, sess, u)
	return ToCustomerResponse(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, sess session.Session, req UpdateProfileRequest) (CustomerResponse, error) {
	u, err := s.api.UpdateProfile(ctx, sess.Token, apiclient.UpdateProfileRequest{
		Name:    helper.TrimmedPtr(req.Name),
		Email:   helper.TrimmedPtr(req.Email),
		Phone:   helper.TrimmedPtr(req.Phone),
		Address: helper.TrimmedPtr(req.Address),
	})
	if err != nil {
		if apiclient.IsConflict(err) {
			return CustomerResponse{}, ErrEmailAlreadyUsed
		}
		return CustomerResponse{}, err
	}

	s.refreshCache(ctx, sess, u)
	return ToCustomerResponse(u), nil
}

// UpdatePassword checks confirmation and length before the store API sees
// the request.
func (s *service) UpdatePassword(ctx context.Context, sess session.Session, req UpdatePasswordRequest) error {
	if req.Password != req.PasswordConfirmation {
		return ErrPasswordMismatch
	}
	if len(req.Password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	return s.api.UpdatePassword(ctx, sess.Token, apiclient.UpdatePasswordRequest{
		CurrentPassword:      req.CurrentPassword,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
}

func (s *service) GetBalance(ctx context.Context, sess session.Session) (BalanceResponse, error) {
	b, err := s.api.GetBalance(ctx, sess.Token)
	if err != nil {
		return BalanceResponse{}, err
	}

	if sess.User != nil && !sess.User.Balance.Equal(b.Balance) {
		u := *sess.User
		u.Balance = b.Balance
		if _, err := s.profiles.UpdateProfile(ctx, sess, u); err != nil {
			s.logger.Warn("failed to cache balance", zap.String("session_id", sess.ID), zap.Error(err))
		}
	}
	return BalanceResponse{Balance: b.Balance, CheckedAt: s.now()}, nil
}

func (s *service) RequestRecharge(ctx context.Context, sess session.Session, req RechargeRequest) (apiclient.RechargeRequest, error) {
	if !req.Amount.IsPositive() {
		return apiclient.RechargeRequest{}, ErrInvalidAmount
	}

	rr, err := s.api.RequestRecharge(ctx, sess.Token, req.Amount)
	if err != nil {
		return apiclient.RechargeRequest{}, err
	}

	_ = s.events.Record(ctx, outbox.AggregateAccount, sess.User.ID, outbox.EventRechargeRequested, map[string]any{
		"recharge_id": rr.ID,
		"user_id":     sess.User.ID,
		"amount":      req.Amount.StringFixed(2),
	})
	return rr, nil
}

func (s *service) ListRecharges(ctx context.Context, sess session.Session) ([]apiclient.RechargeRequest, error) {
	items, err := s.api.ListRechargeRequests(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []apiclient.RechargeRequest{}
	}
	return items, nil
}

func (s *service) ListUsers(ctx context.Context, sess session.Session, p apiclient.ListParams) (apiclient.UserPage, error) {
	return s.api.ListUsers(ctx, sess.Token, p)
}

func (s *service) GetUser(ctx context.Context, sess session.Session, id string) (CustomerResponse, error) {
	u, err := s.api.GetUser(ctx, sess.Token, id)
	if err != nil {
		return CustomerResponse{}, notFound(err)
	}
	return ToCustomerResponse(u), nil
}

func (s *service) UpdateUser(ctx context.Context, sess session.Session, id string, req UpdateUserRequest) (CustomerResponse, error) {
	u, err := s.api.UpdateUser(ctx, sess.Token, id, apiclient.UpdateUserRequest{
		Name:    helper.TrimmedPtr(req.Name),
		Email:   helper.TrimmedPtr(req.Email),
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		if apiclient.IsConflict(err) {
			return CustomerResponse{}, ErrEmailAlreadyUsed
		}
		return CustomerResponse{}, notFound(err)
	}
	return ToCustomerResponse(u), nil
}

func (s *service) DeleteUser(ctx context.Context, sess session.Session, id string) error {
	if sess.User != nil && sess.User.ID == id {
		return ErrCannotDeleteSelf
	}
	return notFound(s.api.DeleteUser(ctx, sess.Token, id))
}

func (s *service) ApproveRecharge(ctx context.Context, sess session.Session, id string) (apiclient.RechargeRequest, error) {
	rr, err := s.api.ApproveRecharge(ctx, sess.Token, id)
	if apiclient.IsNotFound(err) {
		return apiclient.RechargeRequest{}, ErrRechargeNotFound
	}
	return rr, err
}

func (s *service) refreshCache(ctx context.Context, sess session.Session, u apiclient.User) {
	if _, err := s.profiles.UpdateProfile(ctx, sess, session.UserFromAPI(u)); err != nil {
		s.logger.Warn("failed to refresh cached profile", zap.String("session_id", sess.ID), zap.Error(err))
	}
}

func notFound(err error) error {
	if apiclient.IsNotFound(err) {
		return ErrCustomerNotFound
	}
	return err
}
