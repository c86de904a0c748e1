package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"lotteryfrontend.app/internal/adapters/api"
	"lotteryfrontend.app/internal/config"
	"lotteryfrontend.app/internal/core/health"
	"lotteryfrontend.app/internal/core/site"
	"lotteryfrontend.app/internal/ports"
	"lotteryfrontend.app/pkg/logger"
)

type Application struct {
	config *config.Config
	logger *logger.Logger

	// Use Cases
	siteUseCase   *site.UseCase
	healthUseCase *health.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps  *DependencyContainer
	ports *ports.ApplicationPorts
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewWithLevel(logger.ParseLevel(cfg.Log.Level))
	log.SetDefault()

	return NewApplicationWithDependencies(cfg, NewDependencyContainer(cfg, log))
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		logger: depContainer.logger,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	app.checkSiteRoot()

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

// checkSiteRoot only warns: a missing root makes lookups fail, it does not stop the server
func (a *Application) checkSiteRoot() {
	info, err := os.Stat(a.config.Static.RootDir)
	switch {
	case err != nil:
		a.logger.Warn("Static root directory is not accessible; file requests will return 404",
			"root", a.config.Static.RootDir, "error", err)
	case !info.IsDir():
		a.logger.Warn("Static root is not a directory", "root", a.config.Static.RootDir)
	}
}

func (a *Application) initializeUseCases() error {
	a.logger.Info("Initializing use cases...")

	siteUseCase, err := site.NewUseCase(site.UseCaseDependencies{
		Store:  a.ports.AssetStore,
		Logger: a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create site use case: %w", err)
	}
	a.siteUseCase = siteUseCase

	healthUseCase, err := health.NewUseCase(health.UseCaseDependencies{
		Checker: a.ports.HealthChecker,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create health use case: %w", err)
	}
	a.healthUseCase = healthUseCase

	a.logger.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	a.logger.Info("Initializing adapters...")

	if a.config.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := api.ServerOptions{
		Config: api.ServerConfig{
			Host: a.config.Server.Host,
			Port: a.config.Server.Port,
		},
		SiteUseCase:    a.siteUseCase,
		HealthUseCase:  a.healthUseCase,
		Metrics:        a.ports.RequestMetrics,
		MetricsHandler: a.deps.MetricsHandler(),
		Logger:         a.ports.Logger,
	}
	// assigned only when set so the interface stays nil when disabled
	if a.deps.rateLimiter != nil {
		opts.RateLimiter = a.deps.rateLimiter
	}

	httpAdapter, err := api.NewHTTPServerAdapter(opts)
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	// Store router for testing access
	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         httpAdapter.Addr(),
		Handler:      a.router,
		ReadTimeout:  a.config.Server.ReadTimeout,
		WriteTimeout: a.config.Server.WriteTimeout,
		IdleTimeout:  a.config.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.logger.Handler(), slog.LevelError),
	}

	a.logger.Info("Adapters initialized successfully")
	return nil
}

// Start binds the listening socket and serves until Shutdown is called.
// A bind failure is returned immediately.
func (a *Application) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", a.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", a.httpServer.Addr, err)
	}

	return a.Serve(listener)
}

// Serve accepts connections on listener until Shutdown is called
func (a *Application) Serve(listener net.Listener) error {
	a.logger.Info("Starting HTTP server",
		"addr", listener.Addr().String(),
		"root", a.config.Static.RootDir)

	if err := a.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	a.logger.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}
