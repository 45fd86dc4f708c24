package userRoutes

import (
	userController "finacademy/controllers/userControllers"
	"finacademy/middleware"
	userValidator "finacademy/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	app.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
}
