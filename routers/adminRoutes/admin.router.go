package adminRoutes

import (
	adminController "finacademy/controllers/admin"
	"finacademy/middleware"
	courseValidator "finacademy/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the staff-only management routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.StaffOnly)

	// Course CRUD
	adminGroup.Post("/course/create", courseValidator.SaveCourse(), adminController.CreateCourse)
	adminGroup.Get("/course/list", adminController.ListCourses)
	adminGroup.Put("/course/:id", courseValidator.CourseID(), courseValidator.SaveCourse(), adminController.UpdateCourse)
	adminGroup.Delete("/course/:id", courseValidator.CourseID(), adminController.DeleteCourse)

	// Contact inbox
	adminGroup.Get("/messages", adminController.ListMessages)
	adminGroup.Patch("/message/:id/read", adminController.MarkMessageRead)

	// Dashboard
	adminGroup.Get("/dashboard/stats", adminController.DashboardStats)
}
