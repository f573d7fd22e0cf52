package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/client-directory/internal/auth"
	"github.com/BruksfildServices01/client-directory/internal/httperr"
)

const (
	ContextSubject   = "subject"
	ContextRequestID = "requestID"
)

func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid_authorization_header")
			return
		}

		claims, err := jwtManager.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			unauthorized(c, "invalid_token")
			return
		}

		if claims.Subject == "" {
			unauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextSubject, claims.Subject)

		c.Next()
	}
}

func unauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "authentication required")
	c.Abort()
}
