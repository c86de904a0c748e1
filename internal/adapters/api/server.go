// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"lotteryfrontend.app/internal/core/health"
	"lotteryfrontend.app/internal/core/site"
	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router         *gin.Engine
	config         ServerConfig
	siteUseCase    SiteUseCase
	healthUseCase  HealthUseCase
	metrics        ports.RequestMetrics
	metricsHandler http.Handler
	rateLimiter    RateLimiter
	logger         ports.Logger
}

// Use case interfaces that the HTTP adapter depends on
type SiteUseCase interface {
	Index(ctx context.Context) (*site.Asset, error)
	Asset(ctx context.Context, request site.AssetRequest) (*site.Asset, error)
}

type HealthUseCase interface {
	Liveness() health.Status
	Readiness(ctx context.Context) health.Report
}

// RateLimiter decides whether a client may be served right now
type RateLimiter interface {
	Allow(client string) bool
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config        ServerConfig
	SiteUseCase   SiteUseCase
	HealthUseCase HealthUseCase
	Logger        ports.Logger

	// Metrics is always called; MetricsHandler is mounted on /metrics when set.
	Metrics        ports.RequestMetrics
	MetricsHandler http.Handler

	// RateLimiter is optional; nil disables rate limiting.
	RateLimiter RateLimiter
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("configure trusted proxies: %w", err)
	}

	server := &HTTPServerAdapter{
		router:         router,
		config:         opts.Config,
		siteUseCase:    opts.SiteUseCase,
		healthUseCase:  opts.HealthUseCase,
		metrics:        opts.Metrics,
		metricsHandler: opts.MetricsHandler,
		rateLimiter:    opts.RateLimiter,
		logger:         opts.Logger,
	}

	server.setupMiddleware()
	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.SiteUseCase == nil {
		return errors.NewValidationError("site use case is required")
	}
	if opts.HealthUseCase == nil {
		return errors.NewValidationError("health use case is required")
	}
	if opts.Metrics == nil {
		return errors.NewValidationError("request metrics are required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	return nil
}

func (s *HTTPServerAdapter) setupMiddleware() {
	s.router.Use(
		gin.Recovery(),
		requestID(),
		accessLog(s.logger),
		observeRequests(s.metrics),
	)
	if s.rateLimiter != nil {
		s.router.Use(s.rateLimit())
	}
}

// setupRoutes configures all HTTP routes. /assets/* is registered explicitly
// so it wins over the catch-all, which is served through NoRoute.
func (s *HTTPServerAdapter) setupRoutes() {
	s.router.GET("/health", s.getHealth)
	s.router.GET("/health/ready", s.getReadiness)

	if s.metricsHandler != nil {
		s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	}

	s.setupStaticFiles()
}

// Addr returns the configured listen address
func (s *HTTPServerAdapter) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
