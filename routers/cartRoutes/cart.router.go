package cartRoutes

import (
	cartController "finacademy/controllers/cart"
	"finacademy/middleware"
	cartValidator "finacademy/validators/cart"
	courseValidator "finacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCartRoutes sets up the cart routes. Add/remove/list serve both
// anonymous and authenticated visitors; checkout needs an account.
func SetupCartRoutes(app *fiber.App) {
	app.Post("/add-to-cart/:id", middleware.OptionalJWTMiddleware, courseValidator.CourseID(), cartController.AddToCart)
	app.Get("/cart", middleware.OptionalJWTMiddleware, cartController.CartDetail)
	app.Post("/cart/remove/:id", middleware.OptionalJWTMiddleware, cartValidator.ItemID(), cartController.RemoveFromCart)
	app.Post("/cart/checkout", middleware.JWTMiddleware, cartController.Checkout)
}
