package catalogRoutes

import (
	catalogController "finacademy/controllers/catalog"
	"finacademy/middleware"
	courseValidator "finacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the public browsing routes
func SetupCatalogRoutes(app *fiber.App) {
	app.Get("/", catalogController.Home)
	app.Get("/courses", catalogController.ListCourses)
	app.Get("/course/:id", middleware.OptionalJWTMiddleware, courseValidator.CourseID(), catalogController.CourseDetail)
	app.Get("/about", catalogController.About)
}
