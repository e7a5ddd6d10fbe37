package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"people-api/internal/shared/response"
)

// Recovery turns a handler panic into a 500 with the "error" envelope.
// Mounted inside ErrorBodies, so clients end up seeing "An error occurred".
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Interface("panic", rec).
				Msg("Handler panicked")

			c.Abort()
			response.InternalServerError(c, "Internal server error")
		}()

		c.Next()
	}
}
