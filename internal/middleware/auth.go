package middleware

import (
	"net/http"

	authHttp "anoa.com/clubrank/internal/modules/auth/delivery/http"
	"anoa.com/clubrank/internal/modules/auth/session"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	sessions session.Store
}

func NewAuthMiddleware(sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireAuth resolves the session cookie against the server-side session
// store and puts the session user into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(authHttp.SessionCookieName)
		if err != nil || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}

		data, err := m.sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.SetCookie(authHttp.SessionCookieName, "", -1, "/", "", false, true)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			c.Abort()
			return
		}

		c.Set("session_id", sessionID)
		c.Set("user_id", data.UserID)
		c.Set("user_email", data.Email)
		c.Set("user_name", data.Name)
		c.Set("user_role", data.Role)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
