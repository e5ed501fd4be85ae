package app

import (
	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/auth"
	"go-clothing-store/internal/cart"
	"go-clothing-store/internal/category"
	"go-clothing-store/internal/cloudinary"
	"go-clothing-store/internal/config"
	"go-clothing-store/internal/coupon"
	"go-clothing-store/internal/customer"
	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/midtrans"
	"go-clothing-store/internal/order"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/product"
	"go-clothing-store/internal/review"
	"go-clothing-store/internal/session"
	"go-clothing-store/internal/specification"
	"go-clothing-store/internal/wishlist"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type moduleDeps struct {
	cfg      *config.Config
	logger   *zap.Logger
	rdb      *redis.Client
	api      *apiclient.Client
	sessions *session.Manager
	events   outbox.Recorder
	images   cloudinary.Service
}

func registerModules(router *gin.Engine, d moduleDeps) {
	cfg := d.cfg
	resolver := specification.NewResolver(d.api)

	// --- Services ---
	authService := auth.NewService(d.api, d.sessions, d.events, d.logger)
	cartService := cart.NewService(cart.Deps{
		Guest:    cart.NewGuestRepository(d.rdb, cfg.Session.TTL),
		Coupons:  cart.NewCouponRepository(d.rdb, cfg.Session.TTL),
		API:      d.api,
		Resolver: resolver,
		Events:   d.events,
		TaxRate:  cfg.TaxRate,
		Logger:   d.logger,
	})
	wishlistService := wishlist.NewService(
		wishlist.NewGuestRepository(d.rdb, cfg.Session.TTL),
		d.api,
		resolver,
		d.events,
	)
	productService := product.NewService(d.api, d.images, cfg.Cloudinary.Folder, d.logger)
	categoryService := category.NewService(d.api)
	reviewService := review.NewService(d.api)
	couponService := coupon.NewService(d.api)
	customerService := customer.NewService(d.api, d.sessions, d.events, d.logger)
	orderService := order.NewService(order.Deps{
		API:          d.api,
		Cart:         cartService,
		Midtrans:     midtrans.NewService(cfg.Midtrans.ServerKey, cfg.Midtrans.IsProduction),
		Events:       d.events,
		ServiceToken: cfg.StoreAPI.ServiceToken,
		Logger:       d.logger,
	})

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.Session.TTL, d.logger)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	productHandler := product.NewHandler(productService)
	categoryHandler := category.NewHandler(categoryService)
	reviewHandler := review.NewHandler(reviewService)
	couponHandler := coupon.NewHandler(couponService)
	customerHandler := customer.NewHandler(customerService)
	orderHandler := order.NewHandler(orderService, d.logger)

	idempotency := middleware.Idempotency(middleware.NewRedisIdempotencyStore(d.rdb), d.logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.Session(d.sessions, cfg.IsProduction()))
	{
		auth.RegisterRoutes(api, authHandler)
		product.RegisterRoutes(api, productHandler)
		category.RegisterRoutes(api, categoryHandler)
		review.RegisterRoutes(api, reviewHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		customer.RegisterRoutes(api, customerHandler)
		coupon.RegisterRoutes(api, couponHandler)
		order.RegisterRoutes(api, orderHandler, idempotency)
	}
}
