package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-status-sync/pkg/response"
)

const (
	APIKeyHeader = "X-API-Key"
	bearerPrefix = "Bearer "
)

// Auth accepts the admin key either in X-API-Key or as a bearer token.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, bearerPrefix) {
				key = strings.TrimPrefix(h, bearerPrefix)
			}
		}

		if m.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
