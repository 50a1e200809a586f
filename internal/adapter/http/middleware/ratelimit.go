package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"todoapi/pkg/config"
)

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window limiter keyed by client IP and route.
type RateLimiter struct {
	cache   *cache.Cache
	configs map[string]config.RateLimitConfig
	logger  zerolog.Logger
}

func NewRateLimiter(configs map[string]config.RateLimitConfig, logger zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		configs: configs,
		logger:  logger,
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()

		cfg, ok := rl.configs[route]

		if !ok {
			cfg, ok = rl.configs["default"]
		}

		if !ok {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s|%s", route, c.ClientIP())
		now := time.Now()

		entry := rateLimitEntry{count: 1, resetTime: now.Add(cfg.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(rateLimitEntry)

			if now.After(entry.resetTime) {
				entry = rateLimitEntry{count: 1, resetTime: now.Add(cfg.Window)}
			} else {
				entry.count++
			}
		}

		rl.cache.Set(key, entry, time.Until(entry.resetTime))

		if entry.count > cfg.Requests {
			rl.logger.Warn().
				Str("route", route).
				Str("client_ip", c.ClientIP()).
				Int("count", entry.count).
				Msg("rate limit exceeded")

			c.Header("Retry-After", fmt.Sprintf("%d", int(time.Until(entry.resetTime).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"errors": []string{"Too many requests"},
			})
			return
		}

		c.Next()
	}
}
