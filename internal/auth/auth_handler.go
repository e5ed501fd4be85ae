package auth

import (
	"net/http"
	"time"

	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/pkg/httpx"
	platform "go-clothing-store/internal/pkg/request"
	"go-clothing-store/internal/pkg/response"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service   *Service
	cookieTTL time.Duration
	logger    *zap.Logger
}

// NewHandler keeps token cookies alive as long as the session profile.
func NewHandler(s *Service, cookieTTL time.Duration, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, cookieTTL: cookieTTL, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	sess, err := h.service.Login(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		h.logger.Warn("http login failed", zap.String("email", req.Email), zap.Error(err))
		httpx.RespondError(c, err)
		return
	}

	h.signedIn(c, sess, http.StatusOK)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register validation failed", zap.Error(err))
		httpx.BindError(c, err)
		return
	}

	sess, err := h.service.Register(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		h.logger.Error("http register failed", zap.String("email", req.Email), zap.Error(err))
		httpx.RespondError(c, err)
		return
	}

	h.signedIn(c, sess, http.StatusCreated)
}

func (h *Handler) Me(c *gin.Context) {
	sess, err := h.service.Me(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	if !sess.IsAuthenticated() {
		session.ClearTokenCookie(c.Writer, c.GetBool(middleware.CookieSecureKey))
	}
	middleware.SetSession(c, sess)
	response.Success(c, http.StatusOK, MeResponse{Authenticated: sess.IsAuthenticated(), User: sess.User}, nil)
}

func (h *Handler) RefreshToken(c *gin.Context) {
	sess, err := h.service.Refresh(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	h.signedIn(c, sess, http.StatusOK)
}

func (h *Handler) Logout(c *gin.Context) {
	sess, err := h.service.Logout(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	session.ClearTokenCookie(c.Writer, c.GetBool(middleware.CookieSecureKey))
	middleware.SetSession(c, sess)
	response.Success(c, http.StatusOK, ActionStatusResponse{Success: true, Message: "Logout success."}, nil)
}

func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req); err != nil {
		// the answer must not reveal whether the email is registered
		h.logger.Warn("http forgot password failed", zap.Error(err))
	}
	response.Success(c, http.StatusOK, ActionStatusResponse{
		Success: true,
		Message: "If the email is registered, a reset link has been sent.",
	}, nil)
}

func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), req); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ActionStatusResponse{Success: true, Message: "Password has been reset."}, nil)
}

// signedIn hands the token to the client: browsers get an HttpOnly cookie,
// other clients read it from the body.
func (h *Handler) signedIn(c *gin.Context, sess session.Session, status int) {
	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))

	res := AuthResponse{User: sess.User}
	if platform.IsWebClient(clientType) {
		session.SetTokenCookie(c.Writer, sess.Token, h.cookieTTL, c.GetBool(middleware.CookieSecureKey))
	} else {
		res.AccessToken = sess.Token
		res.SessionID = sess.ID
	}

	middleware.SetSession(c, sess)
	response.Success(c, status, res, nil)
}
