package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabbitoyo/catalog-admin-ui/session"
)

// TokenKey is where AuthRequired stores the backend token in the gin context.
const TokenKey = "backendToken"

// AuthRequired is a middleware that checks if the admin has a valid session
// cookie and exposes the backend token to the handler.
func AuthRequired(s *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.Credential(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(TokenKey, token)

		c.Next()
	}
}

// Token returns the backend token stored by AuthRequired.
func Token(c *gin.Context) string {
	return c.GetString(TokenKey)
}

// RedirectIfAuthenticated redirects to the dashboard if the admin already
// has a valid session cookie.
func RedirectIfAuthenticated(s *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := s.Credential(c); !ok {
			// No usable session, continue to login page
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, "/")
		c.Abort()
	}
}
