package middleware

import (
	"net/http"

	"contact-mail-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware gates cross-origin requests against an explicit allow list.
//
// Requests without an Origin header (same-origin, curl, server-to-server) pass.
// Any other origin must be listed exactly; otherwise the request is rejected
// with 403 before it reaches the handler.
func CORSMiddleware(allowList []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowList))
	for _, origin := range allowList {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Vary header to ensure caches differentiate by Origin
		c.Header("Vary", "Origin")

		if origin != "" && !allowed[origin] {
			response.Error(c, http.StatusForbidden, "CORS blocked", nil)
			c.Abort()
			return
		}

		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "POST")
			c.Header("Access-Control-Allow-Headers", "Accept, Content-Type")
			c.Header("Access-Control-Max-Age", "86400") // 24 hours
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
