package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Token is the minimal interface for a verified token that can expose claims.
type Token interface {
	Claims(v interface{}) error
}

// Verifier is the minimal interface the auth guard depends on. The real
// implementation delegates to the external identity provider.
type Verifier interface {
	Verify(ctx context.Context, raw string) (Token, error)
}

// AuthRequired returns a Gin middleware guarding admin routes. A missing or
// malformed Authorization header is 401; a token the identity provider
// rejects is 403, carrying the provider's reason.
func AuthRequired(ver Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication Token is missing or malformed!"})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		token, err := ver.Verify(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token!", "error": err.Error()})
			return
		}

		var claims map[string]interface{}
		if err := token.Claims(&claims); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token!", "error": "failed to parse claims"})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}
