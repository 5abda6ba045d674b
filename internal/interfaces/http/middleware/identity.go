package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/KishoreVB70/icp-marketplace/internal/domain/identity"
)

const (
	// CallerHeader carries the authenticated principal, set by the identity
	// provider in front of this service.
	CallerHeader = "X-Caller-Principal"

	callerKey = "caller_principal"
)

// CallerIdentity resolves the caller's principal for downstream handlers.
// No header means an anonymous caller, matching the identity provider's
// behavior for unauthenticated sessions.
func CallerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := c.GetHeader(CallerHeader)
		if caller == "" {
			caller = identity.AnonymousPrincipalHex
		}
		c.Set(callerKey, caller)
		c.Next()
	}
}

// Caller returns the principal resolved by CallerIdentity.
func Caller(c *gin.Context) string {
	if v, ok := c.Get(callerKey); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return identity.AnonymousPrincipalHex
}
