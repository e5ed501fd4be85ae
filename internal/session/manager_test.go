package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock "go-clothing-store/internal/mock/session"
	"go-clothing-store/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestManager_Hydrate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockProfileStore(ctrl)
	mgr := session.NewManager(store, time.Hour, nil)
	ctx := context.Background()
	user := session.User{ID: "u-1", Name: "Jane", Role: "customer"}

	t.Run("authenticated_when_token_and_profile_present", func(t *testing.T) {
		store.EXPECT().Load(ctx, "sid-1").Return(user, nil)

		s := mgr.Hydrate(ctx, "sid-1", "1|opaque-token")

		assert.Equal(t, session.Authenticated, s.State())
		assert.Equal(t, "u-1", s.User.ID)
		assert.Equal(t, "1|opaque-token", s.Token)
	})

	t.Run("anonymous_without_token", func(t *testing.T) {
		s := mgr.Hydrate(ctx, "sid-1", "")

		assert.Equal(t, session.Anonymous, s.State())
		assert.Equal(t, "sid-1", s.ID)
	})

	t.Run("anonymous_without_profile", func(t *testing.T) {
		store.EXPECT().Load(ctx, "sid-1").Return(session.User{}, session.ErrProfileNotFound)

		s := mgr.Hydrate(ctx, "sid-1", "1|opaque-token")

		assert.False(t, s.IsAuthenticated())
	})

	t.Run("anonymous_when_store_fails", func(t *testing.T) {
		store.EXPECT().Load(ctx, "sid-1").Return(session.User{}, errors.New("redis down"))

		s := mgr.Hydrate(ctx, "sid-1", "1|opaque-token")

		assert.False(t, s.IsAuthenticated())
	})

	t.Run("expired_jwt_is_ignored", func(t *testing.T) {
		s := mgr.Hydrate(ctx, "sid-1", signedToken(t, time.Now().Add(-time.Minute)))

		assert.False(t, s.IsAuthenticated())
	})

	t.Run("valid_jwt_is_accepted", func(t *testing.T) {
		store.EXPECT().Load(ctx, "sid-1").Return(user, nil)

		s := mgr.Hydrate(ctx, "sid-1", signedToken(t, time.Now().Add(time.Hour)))

		assert.True(t, s.IsAuthenticated())
	})
}

func TestManager_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockProfileStore(ctrl)
	mgr := session.NewManager(store, time.Hour, nil)
	ctx := context.Background()
	user := session.User{ID: "u-1", Role: "admin"}

	t.Run("establish", func(t *testing.T) {
		store.EXPECT().Save(ctx, "sid-1", user, time.Hour).Return(nil)

		s, err := mgr.Establish(ctx, "sid-1", "tok", user)

		require.NoError(t, err)
		assert.True(t, s.IsAuthenticated())
		assert.True(t, s.IsAdmin())
	})

	t.Run("establish_requires_session_id", func(t *testing.T) {
		_, err := mgr.Establish(ctx, "", "tok", user)
		assert.ErrorIs(t, err, session.ErrEmptySessionID)
	})

	t.Run("unauthorized_ends_session_in_context", func(t *testing.T) {
		store.EXPECT().Delete(gomock.Any(), "sid-1").Return(nil)

		reqCtx := session.NewContext(ctx, session.Session{ID: "sid-1", Token: "tok", User: &user})
		mgr.HandleUnauthorized(reqCtx, "tok")
	})

	t.Run("unauthorized_for_other_token_is_ignored", func(t *testing.T) {
		reqCtx := session.NewContext(ctx, session.Session{ID: "sid-1", Token: "fresh", User: &user})
		mgr.HandleUnauthorized(reqCtx, "stale")
	})

	t.Run("unauthorized_without_session_is_ignored", func(t *testing.T) {
		mgr.HandleUnauthorized(ctx, "tok")
	})
}

func TestSession_Anonymized(t *testing.T) {
	s := session.Session{ID: "sid-1", Token: "tok", User: &session.User{ID: "u-1"}}

	anon := s.Anonymized()

	assert.Equal(t, "sid-1", anon.ID)
	assert.Equal(t, session.Anonymous, anon.State())
	assert.Equal(t, "anonymous", anon.State().String())
}
