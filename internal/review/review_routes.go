package review

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/products/:id/reviews",
		middleware.RateLimitByIP(5, 10),
		handler.GetByProduct,
	)

	// writing a review takes time, one per 20 seconds stops spam bots
	r.POST("/products/:id/reviews",
		middleware.RequireAuth(),
		middleware.RateLimitByUser(0.05, 1),
		handler.Create,
	)

	reviews := r.Group("/reviews")
	reviews.Use(middleware.RequireAuth())
	{
		reviews.GET("",
			middleware.RateLimitByUser(3, 5),
			handler.GetMine,
		)

		reviewMutationLimit := middleware.RateLimitByUser(0.2, 2)

		reviews.PATCH("/:id", reviewMutationLimit, handler.UpdateReview)
		reviews.DELETE("/:id", reviewMutationLimit, handler.DeleteReview)
	}
}
