package main

import (
	"time"

	"codeberg.org/socialhub/server/contenthub/contents"
	"codeberg.org/socialhub/server/contenthub/quota"
	"codeberg.org/socialhub/server/contenthub/sharing"
	"codeberg.org/socialhub/server/internal/config"
	"codeberg.org/socialhub/server/internal/requestid"
	"codeberg.org/socialhub/server/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// per-IP request ceiling, independent of the per-session daily quota
var ipRate = limiter.Rate{
	Period: 1 * time.Minute,
	Limit:  120,
}

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// all state lives in one in-memory store created here; it starts empty
	// and is discarded at process exit
	store := contents.NewStore()
	counter := quota.NewCounter(store, cfg.DailyLimit)
	registry := sharing.NewRegistry(store)

	services := InitializeServices()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(requestid.Middleware())
	router.Use(limitergin.NewMiddleware(limiter.New(limitermemory.NewStore(), ipRate)))

	cookieStore := session.NewCookieStore(cfg.SessionSecret, cfg.Environment == "production")
	router.Use(session.Middleware(cookieStore))

	server := &Server{
		config:   cfg,
		store:    store,
		counter:  counter,
		registry: registry,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
