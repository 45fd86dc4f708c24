package contactRoutes

import (
	contactController "finacademy/controllers/contact"
	"finacademy/middleware"
	contactValidator "finacademy/validators/contact"

	"github.com/gofiber/fiber/v2"
)

func SetupContactRoutes(app *fiber.App) {
	app.Post("/contact", middleware.OptionalJWTMiddleware, contactValidator.Submit(), contactController.Submit)
	app.Post("/contact/ajax", middleware.OptionalJWTMiddleware, contactValidator.SubmitAjax(), contactController.SubmitAjax)
}
