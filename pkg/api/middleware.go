package api

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/auth"
)

// Context keys set by the auth middleware.
const (
	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

// requestLogger logs one line per request after it completes.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// bearerToken extracts the Bearer credential from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// userAuth requires a valid user JWT and stores the caller's identity on the
// request context.
func userAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil || claims.Subject != auth.SubjectUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, claims.IsAdmin)
		c.Next()
	}
}

// adminAuth guards operator surfaces. It accepts either the static admin
// token or a user JWT carrying the admin claim.
func adminAuth(tokens *auth.TokenManager, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		if adminToken != "" && subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) == 1 {
			c.Set(ctxIsAdmin, true)
			c.Next()
			return
		}
		claims, err := tokens.Verify(token)
		if err != nil || claims.Subject != auth.SubjectUser {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxIsAdmin, true)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id, or 0 when the request
// was authorized by the static admin token.
func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}
