package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WriteLimiter is a fixed-window counter keyed by client IP, used on write
// endpoints where the global guard is too loose. Once a client reaches the
// limit inside the current window every further request is rejected with the
// configured message until the window resets.
type WriteLimiter struct {
	limit    int
	window   time.Duration
	message  string
	mu       sync.Mutex
	visitors map[string]*visitor
}

type visitor struct {
	count     int
	resetTime time.Time
}

// NewWriteLimiter builds a limiter admitting limit requests per window per IP.
func NewWriteLimiter(limit int, window time.Duration, message string) *WriteLimiter {
	return &WriteLimiter{
		limit:    limit,
		window:   window,
		message:  message,
		visitors: make(map[string]*visitor),
	}
}

// Middleware rejects over-quota requests before the handler runs.
func (l *WriteLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !l.allow(ip, time.Now()) {
			zap.L().Warn("Write rate limit exceeded",
				zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": l.message})
			return
		}
		c.Next()
	}
}

func (l *WriteLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := l.visitors[key]
	if v == nil || now.After(v.resetTime) {
		l.visitors[key] = &visitor{
			count:     1,
			resetTime: now.Add(l.window),
		}
		return true
	}

	if v.count >= l.limit {
		return false
	}
	v.count++
	return true
}
