package middleware

import (
	"net/http"
	"strings"

	"go-clothing-store/internal/pkg/apperror"
	"go-clothing-store/internal/pkg/response"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionKey = "session"
	// CookieSecureKey tells handlers which Secure flag session cookies carry.
	CookieSecureKey = "cookie_secure"
)

var (
	ErrSignInRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Please sign in to continue",
		http.StatusUnauthorized,
	).WithDetails(map[string]string{"redirect": "/signin"})

	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Access forbidden",
		http.StatusForbidden,
	)
)

// Session hydrates the session of every request. The session id comes from
// the sid cookie, or from the X-Session-ID header for clients that keep
// their token outside cookies; a request carrying neither gets a fresh id.
// The session is anonymous until both the token and the cached profile are
// found.
func Session(mgr *session.Manager, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CookieSecureKey, secure)

		sid, _ := c.Cookie(session.CookieSessionID)
		if sid == "" {
			sid = headerSessionID(c.GetHeader(session.HeaderSessionID))
		}
		if sid == "" {
			sid = mgr.NewID()
			session.SetSessionIDCookie(c.Writer, sid, mgr.TTL(), secure)
		}
		c.Header(session.HeaderSessionID, sid)

		token, _ := c.Cookie(session.CookieToken)
		if token == "" {
			// non-browser clients send the token as a header
			token = bearerToken(c.GetHeader("Authorization"))
		}

		s := mgr.Hydrate(c.Request.Context(), sid, token)
		if token != "" && !s.IsAuthenticated() {
			session.ClearTokenCookie(c.Writer, secure)
		}

		SetSession(c, s)
		c.Next()
	}
}

// SetSession stores s on both the gin and the request context, the latter
// is what the remote client's 401 hook reads.
func SetSession(c *gin.Context, s session.Session) {
	c.Set(sessionKey, s)
	c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), s))
}

func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.Session); ok {
			return s
		}
	}
	return session.Session{}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).IsAuthenticated() {
			abort(c, ErrSignInRequired)
			return
		}
		c.Next()
	}
}

// RoleMiddleware admits authenticated users holding one of roles. "admin"
// also matches users flagged is_admin by the store API.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := CurrentSession(c)
		if !s.IsAuthenticated() {
			abort(c, ErrSignInRequired)
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if s.User.Role == role || (role == "admin" && s.IsAdmin()) {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			abort(c, ErrForbidden)
			return
		}

		c.Next()
	}
}

func abort(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, err.Details)
	c.Abort()
}

// headerSessionID accepts only ids shaped like the ones NewID hands out.
func headerSessionID(v string) string {
	v = strings.TrimSpace(v)
	if uuid.Validate(v) != nil {
		return ""
	}
	return v
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
