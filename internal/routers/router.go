// Package routers assembles the public and private gin engines.
package routers

import (
	"time"

	"github.com/takvimhub/event-calendar-service/internal/app"
	"github.com/takvimhub/event-calendar-service/internal/middleware"
	"github.com/takvimhub/event-calendar-service/internal/routers/api_router"
	"github.com/takvimhub/event-calendar-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// login is the only brute-forceable surface, keep its bucket tight
var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/auth",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter builds the public API engine: viewing is anonymous, mutation
// and sync control require an admin token.
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLog())
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		authHandler := api_router.NewAuthHandler(appContainer)
		entryHandler := api_router.NewEntryHandler(appContainer)
		calendarHandler := api_router.NewCalendarHandler(appContainer)
		syncHandler := api_router.NewSyncHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		// public read surface
		api.GET("/health", healthHandler.Check)
		api.GET("/calendar", calendarHandler.MonthGrid)
		api.GET("/entries", entryHandler.List)
		api.POST("/auth/login", authHandler.Login)

		// mutation surface, each request authenticated by its own token
		admin := api.Group("")
		admin.Use(middleware.AdminAuthTokenWithConfig(cfg.Security.AuthTokenKey))
		{
			admin.POST("/entries", entryHandler.Create)
			admin.DELETE("/entries", entryHandler.Delete)
			admin.POST("/entries/seen", entryHandler.MarkSeen)
			admin.POST("/sync/commit", syncHandler.Commit)
			admin.POST("/sync/reload", syncHandler.Reload)
			admin.GET("/sync/status", syncHandler.Status)
		}
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
