package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/pkg/auth"
)

func authRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": currentUserID(c)})
	})
	return r
}

func doGet(r *gin.Engine, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	r := authRouter(t, userAuth(tokens))

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "not-a-jwt").Code)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		other := auth.NewTokenManager("other-secret")
		tok, err := other.MintUserToken(1, "a@b.c", false, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, tok).Code)
	})

	t.Run("runner token rejected on user surface", func(t *testing.T) {
		tok, err := tokens.MintRunnerToken(3, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, doGet(r, tok).Code)
	})

	t.Run("valid token sets user id", func(t *testing.T) {
		tok, err := tokens.MintUserToken(42, "a@b.c", false, time.Hour)
		require.NoError(t, err)
		w := doGet(r, tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":42`)
	})
}

func TestAdminAuth(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret")
	r := authRouter(t, adminAuth(tokens, "static-admin-token"))

	t.Run("static admin token", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, doGet(r, "static-admin-token").Code)
	})

	t.Run("admin claim", func(t *testing.T) {
		tok, err := tokens.MintUserToken(7, "admin@b.c", true, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, doGet(r, tok).Code)
	})

	t.Run("non-admin user forbidden", func(t *testing.T) {
		tok, err := tokens.MintUserToken(8, "user@b.c", false, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, doGet(r, tok).Code)
	})

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	})
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Empty(t, bearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer  abc ")
	assert.Equal(t, "abc", bearerToken(c))
}
