package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BodyTooLargeMessage is the plain-text body of a 413 response
const BodyTooLargeMessage = "Request body exceeds maximum allowed size"

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.String(http.StatusRequestEntityTooLarge, BodyTooLargeMessage)
			c.Abort()
			return
		}

		// Chunked bodies carry no length; cap them while reading
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
