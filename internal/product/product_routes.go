package product

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	products := r.Group("/products")
	{
		// loose enough for browsing, tight enough to stop bulk scraping
		products.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.GetPublicList,
		)

		products.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)

		products.GET("/:id/specifications",
			middleware.RateLimitByIP(5, 10),
			handler.ListSpecifications,
		)
	}

	adminProducts := r.Group("/admin/products")
	adminProducts.Use(middleware.RoleMiddleware("admin"))
	{
		adminProducts.GET("",
			middleware.RateLimitByUser(10, 20),
			handler.GetPublicList,
		)

		adminProducts.GET("/:id",
			middleware.RateLimitByUser(10, 20),
			handler.GetByID,
		)

		// guards against double submits from the admin console
		adminMutationLimit := middleware.RateLimitByUser(1, 3)

		adminProducts.POST("", adminMutationLimit, handler.Create)
		adminProducts.PATCH("/:id", adminMutationLimit, handler.Update)
		adminProducts.DELETE("/:id", adminMutationLimit, handler.Delete)

		adminProducts.POST("/:id/specifications", adminMutationLimit, handler.CreateSpecification)
		adminProducts.PATCH("/:id/specifications/:specId", adminMutationLimit, handler.UpdateSpecification)
		adminProducts.DELETE("/:id/specifications/:specId", adminMutationLimit, handler.DeleteSpecification)
	}
}
