package coupon

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	adminCoupons := r.Group("/admin/coupons")
	adminCoupons.Use(middleware.RoleMiddleware("admin"))
	{
		adminCoupons.GET("", middleware.RateLimitByUser(10, 20), handler.List)
		adminCoupons.GET("/:id", middleware.RateLimitByUser(10, 20), handler.GetByID)

		couponMutationLimit := middleware.RateLimitByUser(1, 3)

		adminCoupons.POST("", couponMutationLimit, handler.Create)
		adminCoupons.PUT("/:id", couponMutationLimit, handler.Update)
		adminCoupons.DELETE("/:id", couponMutationLimit, handler.Delete)
	}
}
