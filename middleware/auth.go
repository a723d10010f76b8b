package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-platform/auth"
)

const identityKey = "identity"

// AuthCookieName is the cookie an inbound browser client may carry instead
// of an Authorization header.
const AuthCookieName = "auth_token"

// Authenticate resolves the caller's identity from the bearer token and
// stores it on the context. A missing, malformed, or expired token leaves
// the request anonymous; the handlers' policy checks decide what that
// means per operation.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			c.Next()
			return
		}

		identity, err := tokens.Validate(raw)
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no authenticated identity is present.
// Routes that allow anonymous callers skip it and consult the policy
// themselves.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if Identity(c).Anonymous() {
			c.AbortWithStatusJSON(401, gin.H{"message": "Authentication required"})
			return
		}
		c.Next()
	}
}

// Identity returns the resolved caller, or the anonymous zero value.
func Identity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Identity{}
}

// extractToken prefers the Authorization header, then the auth cookie; the
// query-string fallback exists for diagnostics only.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		token := strings.TrimPrefix(header, "Bearer ")
		if token != header {
			return token
		}
		return ""
	}

	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}

	return c.Query("token")
}
