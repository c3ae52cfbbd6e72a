package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/models"
)

func (s *Server) handleMintEnrollToken(c *gin.Context) {
	resp, err := s.runners.MintEnrollToken(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRegisterRunner(c *gin.Context) {
	var req models.RegisterRunnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: enroll_token is required"})
		return
	}

	resp, err := s.runners.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRotateSecret(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := s.runners.RotateSecret(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleRevokeRunner(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.runners.Revoke(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runner_id": id, "status": "revoked"})
}

// runnerView is the registry listing shape; secret hashes never leave the
// service layer.
type runnerView struct {
	ID         int                    `json:"id"`
	Name       string                 `json:"name"`
	Status     string                 `json:"status"`
	Labels     map[string]string      `json:"labels,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	LastSeenAt *time.Time             `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

func newRunnerView(r *ent.Runner) runnerView {
	return runnerView{
		ID:         r.ID,
		Name:       r.Name,
		Status:     string(r.Status),
		Labels:     r.Labels,
		Metadata:   r.Metadata,
		LastSeenAt: r.LastSeenAt,
		CreatedAt:  r.CreatedAt,
	}
}

func (s *Server) handleListRunners(c *gin.Context) {
	rows, err := s.runners.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	views := make([]runnerView, 0, len(rows))
	for _, r := range rows {
		views = append(views, newRunnerView(r))
	}
	c.JSON(http.StatusOK, gin.H{"runners": views})
}
