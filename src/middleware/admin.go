package middleware

import (
	"net/http"
	"strings"

	"cinecatalog/src/config"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the shared admin secret on write requests.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin gates the admin write endpoints behind a single shared token.
// An unset or placeholder token fails closed as a server misconfiguration,
// never as an open door. Missing and mismatched credentials get the same
// 401 so the response does not reveal which part was wrong.
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := strings.TrimSpace(token)
		if expected == "" || expected == config.AdminTokenPlaceholder {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "ADMIN_TOKEN is not configured",
			})
			return
		}

		if c.GetHeader(AdminTokenHeader) != expected {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin token",
			})
			return
		}

		c.Next()
	}
}
