package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/errors"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 128

	// catchAllRoute labels requests served through NoRoute
	catchAllRoute = "/*path"
)

// requestID echoes a client supplied X-Request-ID or generates one
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// accessLog writes one structured line per request
func accessLog(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("HTTP request",
			ports.F("method", c.Request.Method),
			ports.F("path", c.Request.URL.Path),
			ports.F("status", c.Writer.Status()),
			ports.F("bytes", c.Writer.Size()),
			ports.F("duration_ms", time.Since(start).Milliseconds()),
			ports.F("client_ip", c.ClientIP()),
			ports.F("request_id", c.GetString(requestIDKey)))
	}
}

// observeRequests feeds every request into the metrics port
func observeRequests(metrics ports.RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = catchAllRoute
		}
		metrics.ObserveRequest(route, c.Writer.Status(), time.Since(start))
	}
}

// rateLimit rejects clients that exceeded their token bucket. Health routes are exempt.
func (s *HTTPServerAdapter) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthRoute(c.Request) || s.rateLimiter.Allow(c.ClientIP()) {
			c.Next()
			return
		}
		c.Header("Retry-After", "1")
		s.handleError(c, errors.NewRateLimitedError("Rate limit exceeded. Please try again later."))
		c.Abort()
	}
}

var healthRoutes = map[string]bool{
	"/health":       true,
	"/health/ready": true,
}

func isHealthRoute(r *http.Request) bool {
	return healthRoutes[r.URL.Path]
}
