package cart

import (
	"net/http"

	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/pkg/httpx"
	"go-clothing-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Detail(c *gin.Context) {
	res, err := h.service.Detail(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Count(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, CountResponse{Count: count}, nil)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.AddToCart(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.UpdateQuantity(c.Request.Context(), middleware.CurrentSession(c), c.Param("key"), *req.Quantity)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	res, err := h.service.RemoveFromCart(c.Request.Context(), middleware.CurrentSession(c), c.Param("key"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	if err := h.service.ClearCart(c.Request.Context(), middleware.CurrentSession(c)); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Cart cleared"}, nil)
}

func (h *Handler) ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	applied, err := h.service.ApplyCoupon(ctx, sess, req.Code)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	cart, err := h.service.Detail(ctx, sess)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	msg := "Coupon applied"
	if !applied {
		msg = "Coupon is invalid, expired or the minimum purchase is not met"
	}
	response.Success(c, http.StatusOK, ApplyCouponResponse{Applied: applied, Message: msg, Cart: cart}, nil)
}

func (h *Handler) RemoveCoupon(c *gin.Context) {
	ctx := c.Request.Context()
	sess := middleware.CurrentSession(c)

	if err := h.service.RemoveCoupon(ctx, sess); err != nil {
		httpx.RespondError(c, err)
		return
	}

	cart, err := h.service.Detail(ctx, sess)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cart, nil)
}
