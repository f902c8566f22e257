package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the locals key under which the id is stored.
	RequestIDKey = "request_id"
)

// RequestID reuses the caller-supplied request id when present and generates
// a fresh UUID otherwise. The id is stored in locals and echoed on the
// response so clients can correlate logs.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals(RequestIDKey, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}
