package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"wayfarer/metrics"
)

// ErrorResponse is the body written when a handler panics.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Recovery catches panics and returns a structured 500.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// LoggerKey is the gin context key of the request-scoped logger.
const LoggerKey = "logger"

// RequestLogger logs one line per request. Handlers get a child logger tagged
// with the request's method, path and client through LoggerFrom.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(LoggerKey, logger.With(
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("remote", c.ClientIP()),
		))
		c.Next()

		logger.Info("http_request",
			zap.String("route", route(c)),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", c.ClientIP()),
			zap.String("ua", c.Request.UserAgent()),
		)
	}
}

// LoggerFrom returns the request-scoped logger, or fallback when RequestLogger
// did not run.
func LoggerFrom(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return fallback
}

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.ObserveHTTP(route(c), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return "unmatched"
}

// ─── Rate limiting ────────────────────────────────────────────────────────────

// limiterIdleTTL drops a client's bucket after this long without requests. A
// full bucket refills within a minute, so nothing is lost by forgetting it.
const limiterIdleTTL = 10 * time.Minute

// RateLimiter holds one token bucket per client IP. Buckets are keyed on
// gin's ClientIP, which only honours forwarding headers from trusted proxies.
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute requests per IP, with the full minute's
// allowance available as burst.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &RateLimiter{
		limiters: cache.New(limiterIdleTTL, limiterIdleTTL),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (s *RateLimiter) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.limiters.Get(ip)
	lim, _ := l.(*rate.Limiter)
	if !ok || lim == nil {
		lim = rate.NewLimiter(s.limit, s.burst)
	}
	// re-set on every hit so the idle timer restarts
	s.limiters.Set(ip, lim, cache.DefaultExpiration)
	return lim
}

// Len is the number of clients currently tracked.
func (s *RateLimiter) Len() int {
	return s.limiters.ItemCount()
}

func (s *RateLimiter) Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !s.get(ip).Allow() {
			logger.Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "Rate limit exceeded. Try again later.",
			})
			return
		}
		c.Next()
	}
}
