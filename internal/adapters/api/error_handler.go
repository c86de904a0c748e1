package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"lotteryfrontend.app/internal/ports"
	errorspkg "lotteryfrontend.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		s.logError(c, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = "Not found"
	case errorspkg.RateLimitedError:
		statusCode = http.StatusTooManyRequests
		message = appErr.Message
	case errorspkg.ReadFailureError:
		s.logError(c, err)
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		s.logError(c, err)
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

func (s *HTTPServerAdapter) logError(c *gin.Context, err error) {
	if s.logger == nil {
		return
	}
	s.logger.Error("Request failed",
		ports.F("path", c.Request.URL.Path),
		ports.F("request_id", c.GetString(requestIDKey)),
		ports.F("error", err))
}
