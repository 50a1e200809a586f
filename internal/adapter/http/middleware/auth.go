package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/pkg/auth"
)

const identityKey = "identity"

// Auth gates a route behind a bearer token. An empty secret means no
// authority is configured: the route stays reachable and reports the
// anonymous placeholder identity. This open mode is a deployment choice,
// not a fallback on error.
func Auth(secret string) gin.HandlerFunc {
	verifier := &auth.JWT{Secret: secret}

	return func(c *gin.Context) {
		if secret == "" {
			c.Set(identityKey, auth.Anonymous())
			c.Next()
			return
		}

		bearer := c.GetHeader("Authorization")

		if bearer == "" {
			helper.SendUnauthorizedError(c, "missing authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(bearer, "Bearer ") {
			helper.SendUnauthorizedError(c, "invalid authorization format")
			c.Abort()
			return
		}

		claims, err := verifier.VerifyToken(strings.TrimPrefix(bearer, "Bearer "))

		if err != nil {
			helper.SendUnauthorizedError(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, auth.IdentityFromClaims(claims))
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) auth.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(auth.Identity); ok {
			return identity
		}
	}

	return auth.Anonymous()
}
