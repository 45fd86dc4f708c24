package authRoutes

import (
	authController "finacademy/controllers/auth"
	"finacademy/middleware"
	authValidator "finacademy/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/register", authValidator.Register(), authController.Register)
	app.Post("/login", authValidator.Login(), authController.Login)
	app.Post("/logout", middleware.JWTMiddleware, authController.Logout)
}
