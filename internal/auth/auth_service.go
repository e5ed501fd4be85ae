package auth

import (
	"context"
	"errors"
	"strings"

	"go-clothing-store/internal/apiclient"
	autherrors "go-clothing-store/internal/auth/errors"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type API interface {
	Login(ctx context.Context, req apiclient.LoginRequest) (apiclient.AuthResult, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) (apiclient.AuthResult, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string, opts ...apiclient.CallOption) (apiclient.User, error)
	Refresh(ctx context.Context, token string) (apiclient.AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req apiclient.ResetPasswordRequest) error
}

type SessionManager interface {
	Establish(ctx context.Context, sessionID, token string, u session.User) (session.Session, error)
	UpdateProfile(ctx context.Context, s session.Session, u session.User) (session.Session, error)
	End(ctx context.Context, sessionID string) error
}

type Service struct {
	api      API
	sessions SessionManager
	events   outbox.Recorder
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(api API, sessions SessionManager, events outbox.Recorder, logger *zap.Logger) *Service {
	if events == nil {
		events = outbox.NopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		api:      api,
		sessions: sessions,
		events:   events,
		validate: validator.New(),
		logger:   logger.Named("auth.service"),
	}
}

// Login authenticates against the store API and moves sess to the
// authenticated state. It works the same after an implicit logout.
func (s *Service) Login(ctx context.Context, sess session.Session, req LoginRequest) (session.Session, error) {
	res, err := s.api.Login(ctx, apiclient.LoginRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		if apiclient.IsUnauthorized(err) || apiclient.IsValidation(err) {
			return sess, autherrors.ErrInvalidCredentials
		}
		return sess, err
	}
	return s.establish(ctx, sess, res)
}

func (s *Service) Register(ctx context.Context, sess session.Session, req RegisterRequest) (session.Session, error) {
	if err := s.validate.Struct(req); err != nil {
		return sess, mapValidationError(err)
	}

	res, err := s.api.Register(ctx, apiclient.RegisterRequest{
		Name:                 strings.TrimSpace(req.Name),
		Email:                strings.TrimSpace(req.Email),
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return sess, err
	}

	// some store deployments require a separate sign in after registering
	if res.Token == "" {
		return s.Login(ctx, sess, LoginRequest{Email: req.Email, Password: req.Password})
	}
	return s.establish(ctx, sess, res)
}

// Logout always ends the local session, even when the store API cannot be
// reached to revoke the token.
func (s *Service) Logout(ctx context.Context, sess session.Session) (session.Session, error) {
	if sess.Token != "" {
		if err := s.api.Logout(ctx, sess.Token); err != nil {
			s.logger.Warn("remote logout failed", zap.String("session_id", sess.ID), zap.Error(err))
		}
	}

	if err := s.sessions.End(ctx, sess.ID); err != nil {
		return sess, err
	}

	if sess.User != nil {
		s.record(ctx, sess, outbox.EventSessionSignedOut)
	}
	return sess.Anonymized(), nil
}

// Me checks the store API with the session token. A rejected token ends the
// session quietly instead of failing the request.
func (s *Service) Me(ctx context.Context, sess session.Session) (session.Session, error) {
	if !sess.IsAuthenticated() {
		return sess.Anonymized(), nil
	}

	u, err := s.api.Me(ctx, sess.Token, apiclient.SkipAuthRedirect())
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			if endErr := s.sessions.End(ctx, sess.ID); endErr != nil {
				s.logger.Error("failed to end rejected session", zap.String("session_id", sess.ID), zap.Error(endErr))
			}
			s.record(ctx, sess, outbox.EventSessionExpired)
			return sess.Anonymized(), nil
		}
		return sess, err
	}

	return s.sessions.UpdateProfile(ctx, sess, session.UserFromAPI(u))
}

func (s *Service) Refresh(ctx context.Context, sess session.Session) (session.Session, error) {
	if !sess.IsAuthenticated() {
		return sess, autherrors.ErrNotSignedIn
	}

	res, err := s.api.Refresh(ctx, sess.Token)
	if err != nil {
		if apiclient.IsUnauthorized(err) {
			return sess.Anonymized(), autherrors.ErrSessionExpired
		}
		return sess, err
	}
	if res.User.ID == "" {
		res.User = apiclient.User{
			ID:      sess.User.ID,
			Name:    sess.User.Name,
			Email:   sess.User.Email,
			Role:    sess.User.Role,
			IsAdmin: sess.User.IsAdmin,
			Balance: sess.User.Balance,
		}
	}

	u := session.UserFromAPI(res.User)
	next, err := s.sessions.Establish(ctx, sess.ID, res.Token, u)
	if err != nil {
		return sess, autherrors.ErrSessionUnavailable
	}
	return next, nil
}

func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	return s.api.ForgotPassword(ctx, strings.TrimSpace(req.Email))
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}
	return s.api.ResetPassword(ctx, apiclient.ResetPasswordRequest{
		Token:                req.Token,
		Email:                strings.TrimSpace(req.Email),
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
}

func (s *Service) establish(ctx context.Context, sess session.Session, res apiclient.AuthResult) (session.Session, error) {
	if res.Token == "" {
		return sess, autherrors.ErrSessionUnavailable
	}

	if res.User.ID == "" {
		u, err := s.api.Me(ctx, res.Token, apiclient.SkipAuthRedirect())
		if err != nil {
			s.logger.Error("failed to fetch profile after sign in", zap.Error(err))
			return sess, autherrors.ErrSessionUnavailable
		}
		res.User = u
	}

	next, err := s.sessions.Establish(ctx, sess.ID, res.Token, session.UserFromAPI(res.User))
	if err != nil {
		s.logger.Error("failed to establish session", zap.String("session_id", sess.ID), zap.Error(err))
		return sess, autherrors.ErrSessionUnavailable
	}

	s.record(ctx, next, outbox.EventSessionSignedIn)
	return next, nil
}

func (s *Service) record(ctx context.Context, sess session.Session, eventType string) {
	payload := map[string]string{"session_id": sess.ID}
	if sess.User != nil {
		payload["user_id"] = sess.User.ID
	}
	_ = s.events.Record(ctx, outbox.AggregateSession, sess.ID, eventType, payload)
}

func mapValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	for _, fe := range ve {
		switch {
		case fe.Field() == "PasswordConfirmation":
			return autherrors.ErrPasswordMismatch
		case fe.Field() == "Password" && fe.Tag() == "min":
			return autherrors.ErrPasswordTooShort
		}
	}
	return autherrors.ErrInvalidInput.WithDetails(ve.Error())
}
