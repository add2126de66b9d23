package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/moritani/scribe-go/api/models"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "auth_token"

// LoginPath is the entry point unauthenticated requests are redirected to.
const LoginPath = "/login"

// gateExempt reports whether the path bypasses the gate entirely:
// API routes, static assets, and the favicon.
func gateExempt(path string) bool {
	return strings.HasPrefix(path, "/api/") ||
		strings.HasPrefix(path, "/assets/") ||
		path == "/favicon.ico"
}

// AuthGate guards page routes behind the session cookie. The login page
// always passes through, so a redirect can never loop. By default the check
// is presence-only; with strict enabled the cookie value must also exist in
// the server-side token registry.
func AuthGate(strict bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if gateExempt(path) || path == LoginPath {
			c.Next()
			return
		}

		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		if strict && !models.IsSessionTokenActive(token) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
