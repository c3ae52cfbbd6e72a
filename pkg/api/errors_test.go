package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/oikos-sh/brigade/pkg/services"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	respondServiceError(c, err)
	return w
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", services.NewValidationError("image", "required"), http.StatusBadRequest},
		{"not found", fmt.Errorf("course 9: %w", services.ErrNotFound), http.StatusNotFound},
		{"not cancellable", services.ErrNotCancellable, http.StatusConflict},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"deployment active", services.ErrDeploymentActive, http.StatusConflict},
		{"token spent", services.ErrTokenSpent, http.StatusBadRequest},
		{"access denied", services.ErrAccessDenied, http.StatusForbidden},
		{"unexpected", fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(t, tt.err)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRespondServiceErrorHidesInternals(t *testing.T) {
	w := respond(t, fmt.Errorf("pq: connection refused host=10.0.0.3"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestTokenSpentMessage(t *testing.T) {
	w := respond(t, services.ErrTokenSpent)
	assert.Contains(t, w.Body.String(), "invalid or expired")
}
