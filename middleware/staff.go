package middleware

import (
	"finacademy/database"
	"finacademy/models"

	"github.com/gofiber/fiber/v2"
)

// StaffOnly gates admin endpoints. Must run after JWTMiddleware.
func StaffOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.Role != models.RoleStaff {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Staff only.", nil)
	}

	return c.Next()
}
