package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a panic in a handler into a 500.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			if err := recover(); err != nil {
				actorID := ""
				if actor, ok := ActorFrom(c); ok {
					actorID = actor.ID
				}
				log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
					logger.Any("error", err),
					logger.String("method", c.Request.Method),
					logger.String("path", c.FullPath()),
					logger.String("booking_id", c.Param("id")),
					logger.String("actor", actorID),
					logger.String("request_id", c.GetString("request_id")),
					logger.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					ginext.H{"error": "internal server error"},
				)
			}
		}()

		c.Next()
	}
}
