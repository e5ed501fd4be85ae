package coupon

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

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	item, err := h.service.GetByID(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	item, err := h.service.Create(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	item, err := h.service.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Coupon deleted"}, nil)
}
