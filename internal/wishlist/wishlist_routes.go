package wishlist

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("", middleware.RateLimitByUser(5, 10), handler.List)
		wishlist.GET("/check", middleware.RateLimitByUser(10, 20), handler.Check)

		// writes hit the store API for signed-in shoppers
		itemActionLimit := middleware.RateLimitByUser(2, 5)
		wishlist.POST("/items", itemActionLimit, handler.Create)
		wishlist.DELETE("/items/:key", itemActionLimit, handler.Delete)
		wishlist.POST("/toggle", itemActionLimit, handler.Toggle)
	}
}
