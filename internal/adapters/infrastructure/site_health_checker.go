package infrastructure

import (
	"context"
	"os"
	"path/filepath"

	"lotteryfrontend.app/internal/ports"
)

// SiteRootHealthChecker verifies that the site root is a readable directory
// holding the index document
type SiteRootHealthChecker struct {
	root  string
	index string
}

// NewSiteRootHealthChecker creates a checker for root/index
func NewSiteRootHealthChecker(root, index string) *SiteRootHealthChecker {
	return &SiteRootHealthChecker{root: root, index: index}
}

// Check stats the root and the index document
func (s *SiteRootHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "siteRoot",
		Status:    ports.HealthStatusHealthy,
		Details: map[string]interface{}{
			"root": s.root,
		},
	}

	info, err := os.Stat(s.root)
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}
	if !info.IsDir() {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "root is not a directory"
		return status
	}

	index, err := os.Stat(filepath.Join(s.root, s.index))
	if err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = err.Error()
		return status
	}
	status.Details["index"] = s.index
	status.Details["indexSize"] = index.Size()

	return status
}
