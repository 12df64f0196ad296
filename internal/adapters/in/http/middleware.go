package http

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
	"golang.org/x/time/rate"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// Берем X-Request-ID клиента или генерируем новый
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(requestIDKey, requestID)
		ctx.Header(RequestIDHeader, requestID)
		ctx.Next()
	}
}

func AccessLog(logger out.LoggerPort) gin.HandlerFunc {
	logger = logger.WithModule("HttpServer")

	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		fields := out.LogFields{
			"method":    ctx.Request.Method,
			"path":      path,
			"query":     ctx.Request.URL.RawQuery,
			"status":    ctx.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"clientIp":  ctx.ClientIP(),
			"requestId": ctx.GetString(requestIDKey),
		}
		if len(ctx.Errors) > 0 {
			fields["errors"] = ctx.Errors.String()
		}

		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("http.request", fields)
		case status >= http.StatusBadRequest:
			logger.Warn("http.request", fields)
		default:
			logger.Info("http.request", fields)
		}
	}
}

const (
	rateLimiterClients = 10000
	rateLimiterTTL     = 10 * time.Minute
)

// Лимит запросов на IP клиента. Лимитеры неактивных клиентов вытесняются по TTL и размеру.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	mu       sync.Mutex
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return newRateLimiter(rps, burst, rateLimiterClients, rateLimiterTTL)
}

func newRateLimiter(rps float64, burst int, size int, ttl time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](size, nil, ttl),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters.Get(key)
	if !exists {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters.Add(key, limiter)
	}
	return limiter
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.getLimiter(ctx.ClientIP()).Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		ctx.Next()
	}
}

// Без настроенных клиентов авторизация отключена
func BasicAuth(clients []config.ConfigBasicClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if len(clients) == 0 {
			ctx.Next()
			return
		}

		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range clients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
