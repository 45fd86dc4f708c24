package adminController

import (
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	courseValidator "finacademy/validators/course"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new catalog course. Staff gate runs in middleware.
func CreateCourse(c *fiber.Ctx) error {
	reqData := c.Locals("validatedCourse").(*courseValidator.CoursePayload)

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Rating:      reqData.Rating,
		Price:       reqData.Price,
		IsActive:    true,
	}
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}
	if reqData.IsPremium != nil {
		course.IsPremium = *reqData.IsPremium
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse replaces the editable field set of an existing course.
func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	reqData := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Category = reqData.Category
	course.Rating = reqData.Rating
	course.Price = reqData.Price
	if reqData.IsActive != nil {
		course.IsActive = *reqData.IsActive
	}
	if reqData.IsPremium != nil {
		course.IsPremium = *reqData.IsPremium
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes a course from the shared catalog table for good. The
// external schema carries no soft-delete column.
func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := db.Delete(&course).Error; err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// ListCourses returns every course, inactive ones included.
func ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := database.Database.Db.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
