package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"lotteryfrontend.app/pkg/errors"
)

func setupErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	server := &HTTPServerAdapter{logger: nopLogger{}}

	router := gin.New()

	// Test endpoints for different error types
	router.GET("/test/validation", func(c *gin.Context) {
		server.handleError(c, errors.NewValidationError("validation failed"))
	})

	router.GET("/test/not-found", func(c *gin.Context) {
		server.handleError(c, errors.NewNotFoundError("file not found"))
	})

	router.GET("/test/wrapped-not-found", func(c *gin.Context) {
		server.handleError(c, fmt.Errorf("open asset x: %w", errors.NewNotFoundError("file not found")))
	})

	router.GET("/test/read-failure", func(c *gin.Context) {
		server.handleError(c, errors.NewReadFailureError("permission denied", fmt.Errorf("open /srv/site/secret: permission denied")))
	})

	router.GET("/test/rate-limited", func(c *gin.Context) {
		server.handleError(c, errors.NewRateLimitedError("slow down"))
	})

	router.GET("/test/configuration", func(c *gin.Context) {
		server.handleError(c, errors.NewConfigurationError("configuration error", nil))
	})

	router.GET("/test/generic", func(c *gin.Context) {
		server.handleError(c, fmt.Errorf("plain error"))
	})

	return router
}

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	tests := []struct {
		name            string
		path            string
		expectedStatus  int
		expectedMessage string
	}{
		{"ValidationError", "/test/validation", http.StatusBadRequest, "validation failed"},
		{"NotFoundError", "/test/not-found", http.StatusNotFound, "Not found"},
		{"WrappedNotFoundError", "/test/wrapped-not-found", http.StatusNotFound, "Not found"},
		{"ReadFailureError", "/test/read-failure", http.StatusInternalServerError, "Internal server error"},
		{"RateLimitedError", "/test/rate-limited", http.StatusTooManyRequests, "slow down"},
		{"ConfigurationError", "/test/configuration", http.StatusInternalServerError, "Internal server error"},
		{"GenericError", "/test/generic", http.StatusInternalServerError, "Internal server error"},
	}

	router := setupErrorTestRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response ErrorResponse
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, response.Error)
		})
	}
}

func TestHTTPServerAdapter_HandleError_DoesNotLeakCause(t *testing.T) {
	router := setupErrorTestRouter()

	req := httptest.NewRequest("GET", "/test/read-failure", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.NotContains(t, w.Body.String(), "/srv/site")
	assert.NotContains(t, w.Body.String(), "permission denied")
}

func TestHTTPServerAdapter_HandleError_ErrorResponseStructure(t *testing.T) {
	router := setupErrorTestRouter()

	req := httptest.NewRequest("GET", "/test/validation", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	// Verify the response structure
	assert.Contains(t, response, "error")
	assert.IsType(t, "", response["error"])
	assert.NotEmpty(t, response["error"])
}
