package app

import (
	"database/sql"
	"net/http"

	"go-clothing-store/internal/apiclient"
	"go-clothing-store/internal/cloudinary"
	"go-clothing-store/internal/config"
	"go-clothing-store/internal/middleware"
	"go-clothing-store/internal/outbox"
	"go-clothing-store/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const connectRetries = 5

// App is the wired gateway. Close releases its connections.
type App struct {
	Router *gin.Engine
	rdb    *redis.Client
	db     *sql.DB
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	// 1. Setup Infrastructure
	rdb, err := connectRedisWithRetry(cfg.RedisAddr, connectRetries, logger)
	if err != nil {
		return nil, err
	}
	a := &App{rdb: rdb}

	var events outbox.Recorder = outbox.NopRecorder{}
	if cfg.DBURL != "" {
		db, err := connectDBWithRetry(cfg.DBURL, connectRetries, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.db = db
		events = outbox.NewRecorder(outbox.NewRepository(db), logger)
	} else {
		logger.Warn("DB_URL not set, storefront events are not recorded")
	}

	// 2. Setup Third Party Services
	images, err := cloudinary.NewService(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder,
	)
	if err != nil {
		a.Close()
		return nil, err
	}

	sessions := session.NewManager(session.NewRedisProfileStore(rdb), cfg.Session.TTL, logger)

	client := apiclient.NewClient(cfg.StoreAPI.BaseURL, cfg.StoreAPI.Timeout, logger)
	client.OnUnauthorized(sessions.HandleUnauthorized)

	// 3. Register Modules & Routes
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	registerModules(router, moduleDeps{
		cfg:      cfg,
		logger:   logger,
		rdb:      rdb,
		api:      client,
		sessions: sessions,
		events:   events,
		images:   images,
	})

	a.Router = router
	return a, nil
}

func (a *App) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}
