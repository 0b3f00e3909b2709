package rayid

import (
	"color-api/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the request and response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// maxInboundLength bounds ray ids accepted from upstream proxies.
const maxInboundLength = 128

// New returns a middleware that assigns a ray id to every request.
// An inbound X-Ray-ID header is reused so ids survive a proxy hop.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" || len(rid) > maxInboundLength {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
