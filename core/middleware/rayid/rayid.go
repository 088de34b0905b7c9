// Package rayid assigns a unique request id (RayID) to every incoming
// request for log correlation.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header carries the ray id on requests and responses.
const Header = "X-Ray-Id"

// LocalsKey is the fiber locals key under which the ray id is stored.
const LocalsKey = "ray_id"

// New returns the ray id middleware. An id supplied by the caller is
// kept, otherwise a fresh one is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
