package middleware

import (
	"contact-form-server/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	AuthHeader = "authorization"
	UserIDKey  = "user_id"

	MsgNoToken      = "Unauthorized: No token provided"
	MsgInvalidToken = "Unauthorized: Invalid token"
)

type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTAuth reads the raw token from the authorization header (no "Bearer "
// prefix) and stores the verified user id under UserIDKey.
func JWTAuth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader(AuthHeader)
		if tokenStr == "" {
			utils.RespondError(c, utils.NewAuthError(MsgNoToken))
			c.Abort()
			return
		}

		userID, err := tokens.Verify(tokenStr)
		if err != nil {
			utils.RespondError(c, utils.NewAuthError(MsgInvalidToken))
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
