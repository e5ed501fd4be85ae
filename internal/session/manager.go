package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager moves browser sessions between the anonymous and authenticated
// states. The token lives in a cookie, the profile in the ProfileStore;
// a session is authenticated only while both are present.
type Manager struct {
	store  ProfileStore
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(store ProfileStore, ttl time.Duration, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: logger.Named("session"),
		now:    time.Now,
	}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Hydrate rebuilds the session of an incoming request. Anything missing,
// unparseable or expired yields an anonymous session with the same ID.
func (m *Manager) Hydrate(ctx context.Context, sessionID, token string) Session {
	s := Session{ID: sessionID}
	if sessionID == "" || token == "" {
		return s
	}
	if m.tokenExpired(token) {
		return s
	}

	u, err := m.store.Load(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrProfileNotFound) {
			m.logger.Warn("failed to load session profile", zap.String("session_id", sessionID), zap.Error(err))
		}
		return s
	}

	s.Token = token
	s.User = &u
	return s
}

// Establish performs the anonymous -> authenticated transition.
func (m *Manager) Establish(ctx context.Context, sessionID, token string, u User) (Session, error) {
	if sessionID == "" {
		return Session{}, ErrEmptySessionID
	}
	if err := m.store.Save(ctx, sessionID, u, m.ttl); err != nil {
		return Session{ID: sessionID}, err
	}
	m.logger.Info("session authenticated", zap.String("session_id", sessionID), zap.String("user_id", u.ID))
	return Session{ID: sessionID, Token: token, User: &u}, nil
}

// UpdateProfile refreshes the cached profile of an authenticated session.
func (m *Manager) UpdateProfile(ctx context.Context, s Session, u User) (Session, error) {
	if !s.IsAuthenticated() {
		return s, nil
	}
	if err := m.store.Save(ctx, s.ID, u, m.ttl); err != nil {
		return s, err
	}
	s.User = &u
	return s, nil
}

// End performs the authenticated -> anonymous transition.
func (m *Manager) End(ctx context.Context, sessionID string) error {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	m.logger.Info("session ended", zap.String("session_id", sessionID))
	return nil
}

// HandleUnauthorized is registered on the remote client: a 401 on any
// protected call ends the session found in ctx.
func (m *Manager) HandleUnauthorized(ctx context.Context, token string) {
	s, ok := FromContext(ctx)
	if !ok || s.ID == "" {
		return
	}
	if s.Token != "" && s.Token != token {
		return
	}
	if err := m.End(ctx, s.ID); err != nil {
		m.logger.Error("failed to end session after 401", zap.String("session_id", s.ID), zap.Error(err))
	}
}

// tokenExpired reads the exp claim without verifying the signature; the
// store API remains the verifier. Opaque tokens never expire here.
func (m *Manager) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.Time.After(m.now())
}
