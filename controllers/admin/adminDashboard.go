package adminController

import (
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// DashboardStats returns storefront totals plus this month's activity.
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db
	monthStart := now.BeginningOfMonth()

	var activeCourses, totalUsers, totalEnrollments int64
	db.Model(&models.Course{}).Where("is_active = ?", true).Count(&activeCourses)
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)

	var unreadMessages, messagesThisMonth, enrollmentsThisMonth int64
	db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&unreadMessages)
	db.Model(&models.ContactMessage{}).Where("created_at >= ?", monthStart).Count(&messagesThisMonth)
	db.Model(&models.Enrollment{}).Where("created_at >= ?", monthStart).Count(&enrollmentsThisMonth)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"active_courses":         activeCourses,
		"total_users":            totalUsers,
		"total_enrollments":      totalEnrollments,
		"unread_messages":        unreadMessages,
		"messages_this_month":    messagesThisMonth,
		"enrollments_this_month": enrollmentsThisMonth,
	})
}
