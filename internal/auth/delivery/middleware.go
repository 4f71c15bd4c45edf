package delivery

import (
	"github.com/gin-gonic/gin"

	"authkit-backend/internal/apperror"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/token"
)

// Context keys set by Authenticate.
const (
	ContextUserID = "userID"
	ContextRole   = "userRole"
)

// Authenticate verifies the Bearer access token and stores the caller's
// identity on the request context. Verification is stateless: the claims are
// the identity, no user record is loaded.
func Authenticate(codec *token.Codec, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := codec.ExtractFromHeader(c.GetHeader("Authorization"))
		if tokenString == "" {
			apperror.Respond(c, apperror.NotAuthenticated("User not authenticated", nil))
			c.Abort()
			return
		}

		payload, err := codec.Verify(tokenString, cfg.SecretKey)
		if err != nil {
			apperror.Respond(c, apperror.NotAuthenticated("User not authenticated", nil))
			c.Abort()
			return
		}

		c.Set(ContextUserID, payload.UserID)
		c.Set(ContextRole, payload.Role)
		c.Next()
	}
}

// Authorize allows the request through only when the authenticated role is in
// allowedRoles. An empty list denies everyone.
func Authorize(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		apperror.Respond(c, apperror.Forbidden("Forbidden", map[string]any{"user": c.GetString(ContextUserID)}))
		c.Abort()
	}
}
