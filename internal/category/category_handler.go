package category

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

func (h *Handler) ListPublic(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cats, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	cat, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	cat, err := h.service.Create(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	cat, err := h.service.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Category deleted"}, nil)
}
