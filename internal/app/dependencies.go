package app

import (
	"log/slog"
	"net/http"

	"lotteryfrontend.app/internal/adapters/infrastructure"
	"lotteryfrontend.app/internal/config"
	"lotteryfrontend.app/internal/core/site"
	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/logger"
)

type DependencyContainer struct {
	config         *config.Config
	logger         *logger.Logger
	ports          *ports.ApplicationPorts
	metricsHandler http.Handler
	rateLimiter    *infrastructure.IPRateLimiter
}

// NewDependencyContainer builds every port from configuration. log may be nil,
// in which case a JSON logger at the configured level is created.
func NewDependencyContainer(cfg *config.Config, log *logger.Logger) *DependencyContainer {
	if log == nil {
		log = logger.NewWithLevel(logger.ParseLevel(cfg.Log.Level))
	}

	container := &DependencyContainer{
		config: cfg,
		logger: log,
	}
	container.initializePorts()
	return container
}

func (c *DependencyContainer) initializePorts() {
	c.logger.Info("Initializing ports...")

	store := infrastructure.NewDirectoryAssetStore(c.config.Static.RootDir)

	var requestMetrics ports.RequestMetrics = infrastructure.NoopRequestMetrics{}
	if c.config.Metrics.Enabled {
		prom := infrastructure.NewPrometheusRequestMetrics()
		requestMetrics = prom
		c.metricsHandler = prom.Handler()
	}

	if c.config.RateLimit.Enabled() {
		c.rateLimiter = infrastructure.NewIPRateLimiter(c.config.RateLimit.RPS, c.config.RateLimit.Burst)
		c.logger.Info("Rate limiting enabled",
			slog.Float64("rps", c.config.RateLimit.RPS),
			slog.Int("burst", c.config.RateLimit.Burst))
	}

	healthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		SiteRootChecker: infrastructure.NewSiteRootHealthChecker(store.Root(), site.IndexDocument),
		MetricsEnabled:  c.config.Metrics.Enabled,
	})

	c.ports = &ports.ApplicationPorts{
		AssetStore:     store,
		RequestMetrics: requestMetrics,
		HealthChecker:  healthChecker,
		Logger:         infrastructure.NewSlogLoggerAdapter(c.logger.Logger),
	}
	c.logger.Info("Ports initialized successfully", slog.String("root", store.Root()))
}

// ApplicationPorts returns the initialized ports
func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// MetricsHandler returns the /metrics handler, or nil when metrics are disabled
func (c *DependencyContainer) MetricsHandler() http.Handler {
	return c.metricsHandler
}
