package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"wayfarer/pkg/logger"
)

func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), logger.TraceIDKey, traceID))
		c.Next()
	}
}
