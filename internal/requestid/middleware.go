// Package requestid tags every request with a correlation id for logging.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/socialhub/server/internal/logger"
)

const (
	// HeaderName is the response header carrying the request id
	HeaderName = "X-Request-ID"

	contextKey = "request_id"
)

// Middleware assigns a request id, echoes it in the response header, and
// scopes a logger carrying it into the request context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(HeaderName, id)

		ctx := logger.WithContext(c.Request.Context(), logger.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// returns the request id assigned to this request
func FromContext(c *gin.Context) string {
	return c.GetString(contextKey)
}
