package infrastructure

import (
	"context"

	"lotteryfrontend.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	siteRootChecker ports.SiteRootHealthChecker
	metricsEnabled  bool
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	SiteRootChecker ports.SiteRootHealthChecker
	MetricsEnabled  bool
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		siteRootChecker: config.SiteRootChecker,
		metricsEnabled:  config.MetricsEnabled,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.siteRootChecker != nil {
		results["siteRoot"] = s.siteRootChecker.Check(ctx)
	}

	results["config"] = ports.HealthStatus{
		Component: "config",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"metricsEnabled": s.metricsEnabled,
		},
	}

	return results
}
