package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth handles GET /health requests. The body is fixed.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, s.healthUseCase.Liveness())
}

// getReadiness handles GET /health/ready requests
func (s *HTTPServerAdapter) getReadiness(c *gin.Context) {
	report := s.healthUseCase.Readiness(c.Request.Context())

	status := http.StatusOK
	if !report.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
