package cart

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes serves guests and signed-in shoppers alike; the session
// decides where the lines live.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	cart := r.Group("/cart")
	{
		cart.GET("", h.Detail)
		cart.GET("/count", h.Count)
		cart.DELETE("", h.Clear)

		itemActionLimit := middleware.RateLimitByUser(5, 10)
		cart.POST("/items", itemActionLimit, h.AddItem)
		cart.PATCH("/items/:key", itemActionLimit, h.UpdateQty)
		cart.DELETE("/items/:key", itemActionLimit, h.RemoveItem)

		// coupon codes are guessable, keep attempts slow
		cart.POST("/coupon", middleware.RateLimitByUser(0.5, 3), h.ApplyCoupon)
		cart.DELETE("/coupon", h.RemoveCoupon)
	}
}
