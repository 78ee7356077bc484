package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rev0212/meeting/internal/models"
	"github.com/Rev0212/meeting/internal/service"
)

// Auth resolves the session cookie into a user and stores it on the context
// under "user".
func Auth(svc service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, _ := c.Cookie("session_token")
		u, err := svc.CurrentUser(c.Request.Context(), tok)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Set("user", u)
		c.Next()
	}
}

// Admin requires Auth to have run first.
func Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("user")
		if !ok { c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"}); return }
		if !v.(*models.User).IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin only"}); return
		}
		c.Next()
	}
}
