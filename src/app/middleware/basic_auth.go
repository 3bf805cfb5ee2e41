package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/response"
)

// RequesterEmailKey is the context key under which the authenticated
// principal's email is stored.
const RequesterEmailKey = "requester_email"

// Authenticator verifies a set of basic-auth credentials and returns the
// canonical account email. Implemented by usecase.UserService.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (string, error)
}

// BasicAuth enforces HTTP Basic authentication on every request it wraps.
// On success the verified account email is stored in the Gin context so
// handlers can thread it into mutating service calls; identity is never
// read from ambient state further down.
func BasicAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := GetRequestID(c)

		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="blog"`)
			response.Unauthorized(c, "missing credentials", requestID)
			c.Abort()
			return
		}

		verified, err := auth.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			c.Header("WWW-Authenticate", `Basic realm="blog"`)
			response.Unauthorized(c, "invalid credentials", requestID)
			c.Abort()
			return
		}

		c.Set(RequesterEmailKey, verified)
		c.Next()
	}
}

// GetRequesterEmail retrieves the authenticated email from the Gin context.
// Returns empty string if the request was not authenticated.
func GetRequesterEmail(c *gin.Context) string {
	if v, exists := c.Get(RequesterEmailKey); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
