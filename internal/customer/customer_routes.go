package customer

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	account := r.Group("/account")
	account.Use(middleware.RequireAuth())
	{
		account.GET("/profile", handler.GetProfile)
		account.PATCH("/profile", middleware.RateLimitByUser(1, 3), handler.UpdateProfile)
		account.PUT("/password", middleware.RateLimitByUser(0.1, 2), handler.UpdatePassword)

		account.GET("/balance", handler.GetBalance)
		account.GET("/recharges", handler.ListRecharges)
		account.POST("/recharges", middleware.RateLimitByUser(0.2, 2), handler.RequestRecharge)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RoleMiddleware("admin"))
	{
		admin.GET("/users", middleware.RateLimitByUser(10, 20), handler.ListUsers)
		admin.GET("/users/:id", handler.GetUser)

		adminMutationLimit := middleware.RateLimitByUser(1, 3)
		admin.PATCH("/users/:id", adminMutationLimit, handler.UpdateUser)
		admin.DELETE("/users/:id", adminMutationLimit, handler.DeleteUser)
		admin.POST("/recharges/:id/approve", adminMutationLimit, handler.ApproveRecharge)
	}
}
