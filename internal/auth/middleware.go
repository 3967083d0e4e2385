package auth

import (
	"net/http"

	"gamevault/backend/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the resolved session payload.
const SessionKey = "session"

// RequireSession creates a gin middleware that resolves the session cookie.
// Requests without a live session are rejected with 401.
func RequireSession(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		user, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(SessionKey, user)
		c.Next()
	}
}

// AdminRequired creates a gin middleware to check for the admin flag.
// It must be used AFTER RequireSession.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(SessionKey)
		if !exists {
			// This should not happen if RequireSession is used before it
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		if !v.(session.User).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Next()
	}
}
