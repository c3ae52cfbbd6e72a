package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/database"
	"github.com/oikos-sh/brigade/pkg/version"
)

// handleHealth reports database and dispatcher health. Unauthenticated so
// load balancers can probe it.
func (s *Server) handleHealth(c *gin.Context) {
	dbHealth, dbErr := database.Health(c.Request.Context(), s.db.DB())

	pool := s.dispatcher.Health()

	status := http.StatusOK
	overall := "healthy"
	if dbErr != nil || !pool.IsHealthy {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":     overall,
		"version":    version.Full(),
		"database":   dbHealth,
		"dispatcher": pool,
	})
}
