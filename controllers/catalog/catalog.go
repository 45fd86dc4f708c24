package catalogController

import (
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// The storefront shows free courses as the "popular" strip.
func freeCourseQuery(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ? AND is_premium = ? AND price = 0", true, false)
}

// likeEscaper neutralizes LIKE metacharacters so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Home returns the homepage lists: free ("popular") courses, premium courses
// and approved testimonials.
func Home(c *fiber.Ctx) error {
	db := database.Database.Db

	var freeCourses []models.Course
	if err := freeCourseQuery(db).Limit(3).Find(&freeCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var premiumCourses []models.Course
	if err := db.Where("is_active = ? AND is_premium = ?", true, true).Limit(3).Find(&premiumCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var testimonials []models.Review
	if err := db.Where("is_approved = ?", true).Limit(4).Find(&testimonials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch testimonials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Homepage fetched successfully!", fiber.Map{
		"popular_courses": freeCourses,
		"premium_courses": premiumCourses,
		"testimonials":    testimonials,
	})
}

// ListCourses returns the general catalog (active, non-premium, free and paid
// alike), optionally narrowed by category and a case-insensitive search over
// title or description, plus the uncapped premium list.
func ListCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Where("is_active = ? AND is_premium = ?", true, false)

	category := c.Query("category", "all")
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	search := c.Query("search")
	if search != "" {
		term := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, term, term)
	}

	var courses []models.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var premiumCourses []models.Course
	if err := db.Where("is_active = ? AND is_premium = ?", true, true).Order("created_at desc").Find(&premiumCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":          courses,
		"premium_courses":  premiumCourses,
		"current_category": category,
		"search_query":     search,
	})
}

// CourseDetail returns one course, up to three related courses from the same
// category, and the current visitor's enrollment/cart flags.
func CourseDetail(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var related []models.Course
	if err := db.Where("category = ? AND is_active = ? AND id <> ?", course.Category, true, course.ID).
		Limit(3).Find(&related).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch related courses!", nil)
	}

	identity := middleware.VisitorIdentity(c)

	isEnrolled := false
	if identity.IsUser() {
		var count int64
		db.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", identity.UserID(), course.ID).
			Count(&count)
		isEnrolled = count > 0
	}

	inCart := false
	if !identity.IsZero() {
		var count int64
		identity.Scope(db.Model(&models.CartItem{})).Where("course_id = ?", course.ID).Count(&count)
		inCart = count > 0
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":          course,
		"related_courses": related,
		"is_enrolled":     isEnrolled,
		"in_cart":         inCart,
	})
}

// About returns storefront statistics.
func About(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	db.Model(&models.Course{}).Where("is_active = ?", true).Count(&totalCourses)

	var totalReviews int64
	db.Model(&models.Review{}).Where("is_approved = ?", true).Count(&totalReviews)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"total_courses":     totalCourses,
		"total_reviews":     totalReviews,
		"satisfaction_rate": 98,
	})
}
