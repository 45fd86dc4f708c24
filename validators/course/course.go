package courseValidator

import (
	"finacademy/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stores it as an int.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}
