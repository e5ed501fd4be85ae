package customer

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

func (ctrl *Handler) GetProfile(c *gin.Context) {
	res, err := ctrl.service.GetProfile(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := ctrl.service.UpdateProfile(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	if err := ctrl.service.UpdatePassword(c.Request.Context(), middleware.CurrentSession(c), req); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"}, nil)
}

func (ctrl *Handler) GetBalance(c *gin.Context) {
	res, err := ctrl.service.GetBalance(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) RequestRecharge(c *gin.Context) {
	var req RechargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := ctrl.service.RequestRecharge(c.Request.Context(), middleware.CurrentSession(c), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res, nil)
}

func (ctrl *Handler) ListRecharges(c *gin.Context) {
	res, err := ctrl.service.ListRecharges(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) ListUsers(c *gin.Context) {
	page, err := ctrl.service.ListUsers(c.Request.Context(), middleware.CurrentSession(c), httpx.ListParams(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, page.Data, httpx.Pagination(page.Meta))
}

func (ctrl *Handler) GetUser(c *gin.Context) {
	res, err := ctrl.service.GetUser(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BindError(c, err)
		return
	}

	res, err := ctrl.service.UpdateUser(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), req)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}

func (ctrl *Handler) DeleteUser(c *gin.Context) {
	if err := ctrl.service.DeleteUser(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "User deleted"}, nil)
}

func (ctrl *Handler) ApproveRecharge(c *gin.Context) {
	res, err := ctrl.service.ApproveRecharge(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, nil)
}
