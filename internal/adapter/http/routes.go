package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/telemetry"
	"todoapi/pkg/config"
)

func SetupRouter(container *Container, cfg *config.AppConfig, metrics *telemetry.Metrics, logger zerolog.Logger) *gin.Engine {
	if gin.Mode() == gin.DebugMode && cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging(logger))
	router.Use(metrics.Middleware())
	router.Use(corsMiddleware())

	if cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimitConfigs, logger)
		router.Use(limiter.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	todos := router.Group("/todos")
	{
		todos.GET("", container.TodoHandler.List)
		todos.GET("/:id", container.TodoHandler.GetByID)
		todos.POST("", container.TodoHandler.Create)
		todos.PUT("/:id", container.TodoHandler.Update)
		todos.DELETE("/:id", container.TodoHandler.Delete)
	}

	router.GET("/me", middleware.Auth(cfg.JWTSecret), container.IdentityHandler.Me)

	return router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
