package middleware

import (
	"net/http"
	"sync"
	"time"

	"mentesana/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// rateLimiterStore holds a map of IP addresses to their rate limiters.
type rateLimiterStore struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
}

var limiterStore = &rateLimiterStore{
	limiters: make(map[string]*rate.Limiter),
}

// getLimiter returns the rate limiter for a given IP, creating one if it
// doesn't exist. The refill rate spreads the configured quota across the
// window, with the full quota as burst capacity.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limit := config.AppConfig.GlobalRateLimit
		if limit <= 0 {
			limit = 100
		}
		window := time.Duration(config.AppConfig.GlobalRateWindowMin) * time.Minute
		if window <= 0 {
			window = 15 * time.Minute
		}
		limiter = rate.NewLimiter(rate.Every(window/time.Duration(limit)), limit)
		s.limiters[ip] = limiter
	}
	return limiter
}

// RateLimitMiddleware is the loose global guard applied to every endpoint.
func RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		limiter := limiterStore.getLimiter(ip)
		if !limiter.Allow() {
			zap.L().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Demasiadas solicitudes. Intenta de nuevo más tarde.",
			})
			return
		}
		c.Next()
	}
}
