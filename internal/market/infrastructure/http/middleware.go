package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

// NewRequestIdMiddleware tags every request with an id so a purchase can be
// traced from access log to transaction outcome.
func NewRequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}

		c.Set(RequestIdHeader, requestId)
		c.Writer.Header().Set(RequestIdHeader, requestId)
		c.Next()
	}
}
