package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabbitoyo/catalog-admin-ui/session"
)

// AuthPageRequired ensures the admin is signed in; otherwise redirects to /login.
// This is for HTML page routes, distinct from the JSON API which returns 401 JSON.
func AuthPageRequired(s *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.Credential(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(TokenKey, token)
		c.Next()
	}
}
