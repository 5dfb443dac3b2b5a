package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instagram-rest/internal/instagram"
	"instagram-rest/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopClient struct {
	instagram.Client
}

func newRouter(registry *session.Registry) *gin.Engine {
	r := gin.New()
	r.POST("/protected", RequireSession(registry), func(c *gin.Context) {
		client, ok := SessionClient(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "client missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"has_client": client != nil})
	})
	return r
}

func TestRequireSession(t *testing.T) {
	registry := session.NewRegistry()
	router := newRouter(registry)

	t.Run("missing session_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"detail":"Invalid session_id"}`, w.Body.String())
	})

	t.Run("unknown session_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected?session_id=session_42", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session_id resolves the client", func(t *testing.T) {
		id := registry.Create(&nopClient{})

		req := httptest.NewRequest(http.MethodPost, "/protected?session_id="+id, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"has_client":true}`, w.Body.String())
	})
}

func TestSessionClient_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := SessionClient(c)
	assert.False(t, ok)
}
