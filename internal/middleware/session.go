package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"instagram-rest/internal/instagram"
	"instagram-rest/internal/session"
)

// clientKey is the gin context key under which the resolved session client
// is stored.
const clientKey = "sessionClient"

// RequireSession resolves the session_id query parameter against the
// registry and aborts with 401 when it is missing or unknown. The resolved
// client is stored in the gin context for the handler.
func RequireSession(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid session_id",
			})
			return
		}

		client, ok := registry.Get(sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid session_id",
			})
			return
		}

		c.Set(clientKey, client)
		c.Next()
	}
}

// SessionClient extracts the client resolved by RequireSession.
func SessionClient(c *gin.Context) (instagram.Client, bool) {
	v, ok := c.Get(clientKey)
	if !ok {
		return nil, false
	}
	client, ok := v.(instagram.Client)
	return client, ok
}
