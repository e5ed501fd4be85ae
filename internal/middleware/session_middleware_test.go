package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sessionMock "go-clothing-store/internal/mock/session"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *sessionMock.MockProfileStore, *session.Session) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	store := sessionMock.NewMockProfileStore(ctrl)
	mgr := session.NewManager(store, time.Hour, nil)

	var seen session.Session
	r := gin.New()
	r.Use(Session(mgr, false))
	r.GET("/me", func(c *gin.Context) {
		seen = CurrentSession(c)
		c.Status(http.StatusOK)
	})
	return r, store, &seen
}

func sidCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieSessionID {
			return c
		}
	}
	return nil
}

func TestSession(t *testing.T) {
	profile := session.User{ID: "u-1", Name: "Rani", Role: "customer"}

	t.Run("header_client_rehydrates_with_session_id_header", func(t *testing.T) {
		r, store, seen := setupSessionRouter(t)
		sid := uuid.NewString()
		store.EXPECT().Load(gomock.Any(), sid).Return(profile, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set(session.HeaderSessionID, sid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, seen.IsAuthenticated())
		assert.Equal(t, sid, seen.ID)
		assert.Equal(t, "tok", seen.Token)
		assert.Nil(t, sidCookie(w), "no cookie minted for a known session")
		assert.Equal(t, sid, w.Header().Get(session.HeaderSessionID))
	})

	t.Run("browser_rehydrates_from_cookies", func(t *testing.T) {
		r, store, seen := setupSessionRouter(t)
		store.EXPECT().Load(gomock.Any(), "cookie-sid").Return(profile, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieSessionID, Value: "cookie-sid"})
		req.AddCookie(&http.Cookie{Name: session.CookieToken, Value: "tok"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.True(t, seen.IsAuthenticated())
		assert.Equal(t, "cookie-sid", seen.ID)
	})

	t.Run("cookie_wins_over_header", func(t *testing.T) {
		r, store, seen := setupSessionRouter(t)
		store.EXPECT().Load(gomock.Any(), "cookie-sid").Return(profile, nil)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieSessionID, Value: "cookie-sid"})
		req.Header.Set(session.HeaderSessionID, uuid.NewString())
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "cookie-sid", seen.ID)
	})

	t.Run("malformed_header_gets_fresh_id", func(t *testing.T) {
		r, _, seen := setupSessionRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(session.HeaderSessionID, "../../etc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, seen.IsAuthenticated())
		assert.NotEqual(t, "../../etc", seen.ID)
		require.NotNil(t, sidCookie(w))
		assert.Equal(t, seen.ID, sidCookie(w).Value)
	})

	t.Run("unknown_profile_stays_anonymous", func(t *testing.T) {
		r, store, seen := setupSessionRouter(t)
		sid := uuid.NewString()
		store.EXPECT().Load(gomock.Any(), sid).Return(session.User{}, session.ErrProfileNotFound)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set(session.HeaderSessionID, sid)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.False(t, seen.IsAuthenticated())
		assert.Equal(t, sid, seen.ID)
	})
}
