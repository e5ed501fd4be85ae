package order

import (
	"net/http"

	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/midtrans"
	"go-clothing-store/internal/pkg/httpx"
	"go-clothing-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &Handler{service: svc, logger: l.Named("order.handler")}
}

// ==================== CUSTOMER ENDPOINTS ====================

// Checkout creates an order from the shopper's cart.
// POST /orders/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("checkout validation failed", zap.Error(err))
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.Checkout(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) List(c *gin.Context) {
	p := httpx.ListParams(c)
	if status := c.Query("status"); status != "" && status != "all" {
		p.Status = status
	}

	page, err := h.service.List(c.Request.Context(), middleware.CurrentSession(c), p)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page.Data, httpx.Pagination(page.Meta))
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	res, err := h.service.Cancel(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Complete(c *gin.Context) {
	res, err := h.service.Complete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) ContinuePayment(c *gin.Context) {
	res, err := h.service.ContinuePayment(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PaymentResponse{
		Method:      PaymentMidtrans,
		Status:      StatusPending,
		SnapToken:   res.Token,
		RedirectURL: res.RedirectURL,
	}, nil)
}

// ==================== ADMIN ENDPOINTS ====================

func (h *Handler) ListAdmin(c *gin.Context) {
	p := httpx.ListParams(c)
	p.Status = c.Query("status")

	page, err := h.service.ListAdmin(c.Request.Context(), middleware.CurrentSession(c), p)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page.Data, httpx.Pagination(page.Meta))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req.Status)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// ==================== WEBHOOK ====================

func (h *Handler) HandleMidtransNotification(c *gin.Context) {
	var payload midtrans.Notification
	if err := c.ShouldBindJSON(&payload); err != nil {
		httpx.BindError(c, err)
		return
	}

	if err := h.service.HandleMidtransNotification(c.Request.Context(), payload); err != nil {
		h.logger.Warn("midtrans notification rejected",
			zap.String("order_id", payload.OrderID),
			zap.Error(err),
		)
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "ok"}, nil)
}
