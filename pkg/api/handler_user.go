package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/auth"
)

const (
	defaultTokenTTL = 24 * time.Hour
	maxTokenTTL     = 30 * 24 * time.Hour
)

type mintTokenRequest struct {
	Email    string `json:"email" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
	TTLHours int    `json:"ttl_hours"`
}

// handleMintUserToken issues a user JWT, creating the user on first use.
// Operator-only; there is no self-service login.
func (s *Server) handleMintUserToken(c *gin.Context) {
	var req mintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: email is required"})
		return
	}

	ttl := defaultTokenTTL
	if req.TTLHours > 0 {
		ttl = min(time.Duration(req.TTLHours)*time.Hour, maxTokenTTL)
	}

	u, err := s.users.GetOrCreateByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	token, err := s.tokens.MintUserToken(u.ID, u.Email, req.IsAdmin, ttl)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":    u.ID,
		"email":      u.Email,
		"token":      token,
		"expires_at": time.Now().Add(ttl).UTC(),
	})
}

// handleStoreCredentials replaces the caller's sealed connector credentials.
func (s *Server) handleStoreCredentials(c *gin.Context) {
	var creds map[string]string
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := s.users.StoreCredentials(c.Request.Context(), currentUserID(c), creds)
	if err != nil {
		if errors.Is(err, auth.ErrSealKeyMissing) {
			c.JSON(http.StatusNotImplemented, gin.H{"error": "credential sealing is not configured"})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stored": len(creds)})
}
