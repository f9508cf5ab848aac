package flash

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"
)

// Success queues a success message for the next page.
func Success(c *fiber.Ctx, message string) *fiber.Ctx {
	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": message,
	})
}

func Error(c *fiber.Ctx, message string) *fiber.Ctx {
	return flash.WithError(c, fiber.Map{
		"type":    "error",
		"message": message,
	})
}

// Get returns the message queued by the previous request, or nil.
func Get(c *fiber.Ctx) fiber.Map {
	msg := flash.Get(c)
	if len(msg) == 0 {
		return nil
	}
	return msg
}
