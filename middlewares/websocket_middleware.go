package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

var boardRoles = map[string]bool{
	"host":   true,
	"staff":  true,
	"viewer": true,
}

// BoardRoleMiddleware -> role client papan meja dari ?role= (default viewer)
func BoardRoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.DefaultQuery("role", "viewer")
		if !boardRoles[role] {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		// Set role ke context
		c.Set("role", role)

		c.Next()
	}
}
