package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware assigns a unique id to each request, honoring an
// incoming X-Request-ID header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(RequestIDKey, id)

		// Mirror into the request context under the string key the logger
		// package reads, so logger.WithContext picks it up.
		ctx := context.WithValue(c.Request.Context(), "request_id", id) //nolint:staticcheck
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
