package middlewares

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	authMiddleware "summerschool_backend/internals/middlewares/auth"
)

const LocalsRequestID = "reqid"

// RequestContext tags the request with X-Request-ID and bounds it with a timeout
// carried by c.UserContext(). Errors from the chain are rendered here so the
// [REQ] line carries the final status.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(LocalsRequestID, id)

		start := time.Now()
		if timeout > 0 {
			ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
			defer cancel()
			c.SetUserContext(ctx)
		}

		if err := c.Next(); err != nil {
			if hErr := c.App().Config().ErrorHandler(c, err); hErr != nil {
				log.Printf("[ERROR] id=%s error handler: %v", id, hErr)
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		user := authMiddleware.EmailFrom(c)
		if user == "" {
			user = "-"
		}
		log.Printf("[REQ] id=%s %s %s status=%d user=%s dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), user, time.Since(start))
		return nil
	}
}
