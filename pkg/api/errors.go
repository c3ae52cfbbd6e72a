package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oikos-sh/brigade/pkg/services"
)

// respondServiceError maps service-layer errors onto HTTP status codes.
// Unexpected errors are logged and hidden behind a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotCancellable),
		errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrDeploymentActive):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrTokenSpent):
		c.JSON(http.StatusBadRequest, gin.H{"error": "enrollment token is invalid or expired"})
	case errors.Is(err, services.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	default:
		slog.Error("Unexpected service error",
			"method", c.Request.Method, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
