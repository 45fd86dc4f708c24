package courseRoutes

import (
	courseController "finacademy/controllers/course"
	"finacademy/middleware"
	courseValidator "finacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	app.Post("/course/:id/enroll", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.EnrollInCourse)
	app.Get("/user/enrollments", middleware.JWTMiddleware, courseController.GetEnrollments)
}
