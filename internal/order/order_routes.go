package order

import (
	"go-clothing-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, idempotency gin.HandlerFunc) {
	if idempotency == nil {
		idempotency = func(c *gin.Context) { c.Next() }
	}

	orders := r.Group("/orders")
	orders.Use(middleware.RequireAuth())
	orders.Use(middleware.RateLimitByUser(5, 10))
	{
		// one checkout per 10s keeps double submits and bots out
		orders.POST("/checkout",
			middleware.RateLimitByUser(0.1, 1),
			idempotency,
			handler.Checkout,
		)

		orders.GET("", handler.List)
		orders.GET("/:id", handler.Detail)

		orders.POST("/:id/pay",
			middleware.RateLimitByUser(0.2, 2),
			handler.ContinuePayment,
		)
		orders.PATCH("/:id/cancel",
			middleware.RateLimitByUser(0.5, 2),
			handler.Cancel,
		)
		orders.PATCH("/:id/complete",
			middleware.RateLimitByUser(0.5, 2),
			handler.Complete,
		)
	}

	adminOrders := r.Group("/admin/orders")
	adminOrders.Use(middleware.RoleMiddleware("admin"))
	adminOrders.Use(middleware.RateLimitByIP(10, 20))
	{
		adminOrders.GET("", handler.ListAdmin)
		adminOrders.PATCH("/:id/status",
			middleware.RateLimitByUser(2, 5),
			handler.UpdateStatus,
		)
	}

	r.POST("/payments/midtrans/notification",
		middleware.RateLimitByIP(20, 40),
		handler.HandleMidtransNotification,
	)
}
