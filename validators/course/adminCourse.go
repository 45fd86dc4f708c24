package courseValidator

import (
	"finacademy/middleware"
	"finacademy/models"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CoursePayload is the fixed field set staff may set on a course.
type CoursePayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	IsActive    *bool   `json:"is_active"`
	IsPremium   *bool   `json:"is_premium"`
}

// SaveCourse validates the staff course create/update body.
func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		if !models.IsValidCategory(reqData.Category) {
			errors["category"] = "Unknown category!"
		}

		if reqData.Rating < 0 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 0 and 5!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
