// Package openapi embeds the hand-written OpenAPI document and serves it.
package openapi

import (
	_ "embed"

	"github.com/gofiber/fiber/v2"
)

// JSON contains the embedded OpenAPI document.
//
//go:embed openapi.json
var JSON []byte

// Register mounts the document route.
func Register(app fiber.Router) {
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(JSON)
	})
}
