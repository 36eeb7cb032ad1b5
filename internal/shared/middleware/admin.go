package middleware

import (
	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/response"
)

// RequireAdmin rejects requests whose principal does not carry the admin
// role. Must run after Auth. Services guard protected operations again
// themselves; this stage only short-circuits the obvious cases.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := PrincipalFrom(c)
		if !p.IsAdmin() {
			response.Forbidden(c, "admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
