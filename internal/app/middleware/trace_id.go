package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DVilla96/banqi-1-sub000/internal/pkg/logger"
)

const TraceIDHeader = "X-Trace-Id"

// AttachTraceID propagates the caller's trace ID, or mints one, into the
// request context so every log line of the request carries it.
func AttachTraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
