package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Site
	AssetStore AssetStore

	// Observability
	RequestMetrics RequestMetrics
	HealthChecker  SystemHealthChecker

	// Infrastructure
	Logger Logger
}
