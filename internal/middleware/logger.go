package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const requestIDHeader = "X-Request-ID"

func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestLogger(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()
		c.Next()

		level := logger.InfoLevel
		if c.Writer.Status() >= 500 {
			level = logger.ErrorLevel
		}
		log.LogAttrs(c.Request.Context(), level, "http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", c.Writer.Status()),
			logger.Duration("latency", time.Since(start)),
			logger.String("request_id", c.GetString("request_id")),
			logger.String("error", c.GetString("error")),
		)
	}
}
