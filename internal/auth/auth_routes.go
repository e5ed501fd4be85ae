package auth

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimitByIP(0.05, 1), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(0.1, 3), handler.Login)
		auth.POST("/forgot-password", middleware.RateLimitByIP(0.02, 1), handler.ForgotPassword)
		auth.POST("/reset-password", middleware.RateLimitByIP(0.05, 2), handler.ResetPassword)

		auth.GET("/me", handler.Me)
		auth.POST("/refresh", middleware.RequireAuth(), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
	}
}
