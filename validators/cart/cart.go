package cartValidator

import (
	"github.com/gofiber/fiber/v2"
)

// ItemID validates the :id cart item route parameter. Failures answer in the
// cart AJAX shape rather than the API envelope.
func ItemID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Invalid cart item ID",
			})
		}

		c.Locals("itemID", id)
		return c.Next()
	}
}
