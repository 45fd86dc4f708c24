package courseController

import (
	"errors"
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollInCourse records course ownership for the authenticated user.
// Enrolling twice is not an error: the second call reports already_enrolled.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_active = ?", courseID, true).First(&course).Error; err != nil {
		return c.JSON(fiber.Map{
			"success":          false,
			"already_enrolled": false,
			"message":          "Course not found or not active",
		})
	}

	var existing models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"success":          true,
			"already_enrolled": true,
			"message":          "Already enrolled in this course",
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{
			"success":          false,
			"already_enrolled": false,
			"message":          "Failed to enroll in course",
		})
	}

	enrollment := models.Enrollment{UserID: userID, CourseID: course.ID}
	if err := db.Create(&enrollment).Error; err != nil {
		// A racing duplicate enroll trips the (user, course) unique pair.
		if recheck := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; recheck == nil {
			return c.JSON(fiber.Map{
				"success":          true,
				"already_enrolled": true,
				"message":          "Already enrolled in this course",
			})
		}
		log.Printf("Error enrolling user %d in course %d: %v", userID, course.ID, err)
		return c.JSON(fiber.Map{
			"success":          false,
			"already_enrolled": false,
			"message":          "Failed to enroll in course",
		})
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"already_enrolled": false,
		"message":          "Enrolled in course successfully",
	})
}

// GetEnrollments lists the authenticated user's enrollments with their courses.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
