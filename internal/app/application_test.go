package app

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lotteryfrontend.app/internal/config"
	"lotteryfrontend.app/pkg/logger"
)

func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Static:    config.StaticConfig{RootDir: root},
		Log:       config.LogConfig{Level: "info"},
		Metrics:   config.MetricsConfig{Enabled: true},
		RateLimit: config.RateLimitConfig{RPS: 0, Burst: 1},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func testSiteRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("<html>A</html>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "assets", "app.css"), []byte("body{}"), 0o644))
	return root
}

func newTestApplication(t *testing.T, cfg *config.Config) (*Application, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelDebug)

	app, err := NewApplicationWithDependencies(cfg, NewDependencyContainer(cfg, log))
	require.NoError(t, err)
	return app, &buf
}

func TestApplication_Routes(t *testing.T) {
	app, _ := newTestApplication(t, testConfig(t, testSiteRoot(t)))
	router := app.GetRouter()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "<html>A</html>"},
		{"/index.html", http.StatusOK, "<html>A</html>"},
		{"/assets/app.css", http.StatusOK, "body{}"},
		{"/assets/missing.css", http.StatusNotFound, ""},
		{"/../etc/passwd", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestApplication_MetricsToggle(t *testing.T) {
	root := testSiteRoot(t)

	enabled, _ := newTestApplication(t, testConfig(t, root))
	w := httptest.NewRecorder()
	enabled.GetRouter().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	cfg := testConfig(t, root)
	cfg.Metrics.Enabled = false
	disabled, _ := newTestApplication(t, cfg)
	w = httptest.NewRecorder()
	disabled.GetRouter().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplication_RateLimitEnabled(t *testing.T) {
	cfg := testConfig(t, testSiteRoot(t))
	cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	app, _ := newTestApplication(t, cfg)

	first := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
	second := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(second, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestApplication_MissingRootOnlyWarns(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "not-built"))

	app, logs := newTestApplication(t, cfg)

	assert.Contains(t, logs.String(), "Static root directory is not accessible")
	w := httptest.NewRecorder()
	app.GetRouter().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplication_StartFailsWhenPortIsTaken(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := testConfig(t, testSiteRoot(t))
	cfg.Server.Port = occupied.Addr().(*net.TCPAddr).Port
	app, _ := newTestApplication(t, cfg)

	err = app.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind")
}

func TestApplication_ServeAndShutdown(t *testing.T) {
	app, _ := newTestApplication(t, testConfig(t, testSiteRoot(t)))

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Serve(listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, app.Shutdown(ctx))
	assert.NoError(t, <-done)
}
