package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/pkg/response"
)

const roleKey = "client_role"

// RoleAdmin marks coordinator/back-office clients.
const RoleAdmin = "admin"

// ClientRole reads the X-Client-Role header into the context.
// Authentication itself lives at the gateway in front of this service;
// the header is the gateway's verdict.
func ClientRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(roleKey, c.GetHeader("X-Client-Role"))
		c.Next()
	}
}

// RequireRole rejects requests whose client role is not one of the
// allowed values.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(roleKey)
		for _, r := range allowedRoles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "Insufficient role for this operation")
		c.Abort()
	}
}
