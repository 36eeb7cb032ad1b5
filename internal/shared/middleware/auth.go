package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-backend/internal/shared"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/jwt"
)

// Auth verifies the bearer token and attaches the authenticated
// principal to the request context. Requests without a valid token are
// rejected with 401 before reaching any handler.
func Auth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "login required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "invalid user ID in token")
			c.Abort()
			return
		}

		c.Set(shared.ContextKeyPrincipal, &shared.Principal{
			UserID: userID,
			Email:  claims.Email,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// PrincipalFrom extracts the principal set by Auth. Returns nil for
// anonymous requests.
func PrincipalFrom(c *gin.Context) *shared.Principal {
	v, exists := c.Get(shared.ContextKeyPrincipal)
	if !exists {
		return nil
	}
	p, ok := v.(*shared.Principal)
	if !ok {
		return nil
	}
	return p
}
