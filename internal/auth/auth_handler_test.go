package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/auth"
	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupTestRouter(d *serviceDeps, sess session.Session) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetSession(c, sess)
		c.Next()
	})
	auth.RegisterRoutes(r.Group("/api/v1"), auth.NewHandler(d.service, time.Hour))
	return r
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieToken {
			return c
		}
	}
	return nil
}

func TestHandler_Login(t *testing.T) {
	body := `{"email":"rani@example.com","password":"secret123"}`

	t.Run("Browser Gets Cookie", func(t *testing.T) {
		d := setupServiceTest(t)
		d.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(apiclient.AuthResult{Token: "tok", User: apiUser}, nil)
		d.sessions.EXPECT().Establish(gomock.Any(), "sid-1", "tok", gomock.Any()).Return(signed, nil)
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "Mozilla/5.0")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		cookie := tokenCookie(w)
		require.NotNil(t, cookie)
		assert.Equal(t, "tok", cookie.Value)
		assert.True(t, cookie.HttpOnly)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var res auth.AuthResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Empty(t, res.AccessToken)
		assert.Empty(t, res.SessionID)
		assert.Equal(t, "u-1", res.User.ID)
	})

	t.Run("Mobile Gets Token In Body", func(t *testing.T) {
		d := setupServiceTest(t)
		d.api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(apiclient.AuthResult{Token: "tok", User: apiUser}, nil)
		d.sessions.EXPECT().Establish(gomock.Any(), "sid-1", "tok", gomock.Any()).Return(signed, nil)
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "mobile")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Nil(t, tokenCookie(w))

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var res auth.AuthResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "tok", res.AccessToken)
		assert.Equal(t, "sid-1", res.SessionID)
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		d := setupServiceTest(t)
		d.api.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(apiclient.AuthResult{}, &apiclient.APIError{Status: http.StatusUnauthorized})
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Nil(t, tokenCookie(w))
	})

	t.Run("Bad Payload", func(t *testing.T) {
		d := setupServiceTest(t)
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	d := setupServiceTest(t)
	d.api.EXPECT().Logout(gomock.Any(), "tok").Return(nil)
	d.sessions.EXPECT().End(gomock.Any(), "sid-1").Return(nil)
	r := setupTestRouter(d, signed)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookie := tokenCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestHandler_Me(t *testing.T) {
	t.Run("Anonymous", func(t *testing.T) {
		d := setupServiceTest(t)
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var res auth.MeResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.False(t, res.Authenticated)
		assert.Nil(t, res.User)
	})

	t.Run("Refresh Requires Sign In", func(t *testing.T) {
		d := setupServiceTest(t)
		r := setupTestRouter(d, guest)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_ForgotPassword(t *testing.T) {
	d := setupServiceTest(t)
	d.api.EXPECT().ForgotPassword(gomock.Any(), "ghost@example.com").
		Return(&apiclient.APIError{Status: http.StatusNotFound})
	r := setupTestRouter(d, guest)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password", strings.NewReader(`{"email":"ghost@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
