package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/models"
)

// handleCreateDeployment starts a rolling deployment, or returns the target
// set without mutating anything when dry_run is set.
func (s *Server) handleCreateDeployment(c *gin.Context) {
	var req models.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: image is required"})
		return
	}

	status, dryRun, err := s.deployments.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if dryRun != nil {
		c.JSON(http.StatusOK, dryRun)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleListDeployments(c *gin.Context) {
	list, err := s.deployments.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deployments": list})
}

func (s *Server) handleGetDeployment(c *gin.Context) {
	status, err := s.deployments.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleRollbackDeployment(c *gin.Context) {
	status, err := s.deployments.Rollback(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (s *Server) handleDeprovisionInstance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.deployments.Deprovision(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"instance_id": id, "status": "deprovisioned"})
}
