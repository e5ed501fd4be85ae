package category

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	categories := r.Group("/categories")
	{
		// categories rarely change, keep public reads loose
		categories.GET("",
			middleware.RateLimitByIP(10, 20),
			handler.ListPublic,
		)

		categories.GET("/:id",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)
	}

	adminCategories := r.Group("/admin/categories")
	adminCategories.Use(middleware.RoleMiddleware("admin"))
	{
		adminCategories.GET("",
			middleware.RateLimitByUser(10, 20),
			handler.ListPublic,
		)

		// a category change touches many products at once
		categoryMutationLimit := middleware.RateLimitByUser(1, 3)

		adminCategories.POST("", categoryMutationLimit, handler.Create)
		adminCategories.PATCH("/:id", categoryMutationLimit, handler.Update)
		adminCategories.DELETE("/:id", categoryMutationLimit, handler.Delete)
	}
}
