package wishlist

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

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc}
}

// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	res, err := h.service.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /wishlist/items
func (h *Handler) Create(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.AddToWishlist(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

// DELETE /wishlist/items/:key
func (h *Handler) Delete(c *gin.Context) {
	res, err := h.service.RemoveFromWishlist(c.Request.Context(), middleware.CurrentSession(c), c.Param("key"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// POST /wishlist/toggle
func (h *Handler) Toggle(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := h.service.ToggleWishlist(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

// GET /wishlist/check?productId=&specificationId=
func (h *Handler) Check(c *gin.Context) {
	productID := c.Query("productId")
	if productID == "" {
		httpx.RespondError(c, ErrInvalidProductID)
		return
	}

	res, err := h.service.Check(c.Request.Context(), middleware.CurrentSession(c), productID, c.Query("specificationId"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
