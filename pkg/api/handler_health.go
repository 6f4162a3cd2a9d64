package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hugocool/fateforger/pkg/database"
	"github.com/hugocool/fateforger/pkg/version"
)

// Health handles GET /health. Reports the database and the calendar
// MCP server; an unhealthy component degrades the overall status to
// 503 but the body still names what works.
func (s *Server) Health(c *gin.Context) {
	healthy := true
	components := gin.H{}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		status, err := database.Health(ctx, s.db.DB())
		components["database"] = status
		if err != nil {
			components["database_error"] = err.Error()
			healthy = false
		}
	}

	if s.calHealth != nil {
		status := s.calHealth.Status()
		components["calendar"] = status
		if !status.Healthy {
			healthy = false
		}
	}

	code := http.StatusOK
	overall := "healthy"
	if !healthy {
		code = http.StatusServiceUnavailable
		overall = "unhealthy"
	}
	c.JSON(code, gin.H{"status": overall, "version": version.Full(), "components": components})
}
