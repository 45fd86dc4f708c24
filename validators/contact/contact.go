package contactValidator

import (
	"finacademy/middleware"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ContactPayload is a validated contact form submission. Subject is optional.
type ContactPayload struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func checkPayload(reqData *ContactPayload) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Name) == "" {
		errors["name"] = "Name is required!"
	}
	if err := validate.Var(reqData.Email, "required,email"); err != nil {
		errors["email"] = "Invalid email!"
	}
	if strings.TrimSpace(reqData.Message) == "" {
		errors["message"] = "Message is required!"
	}

	return errors
}

// Submit validates the standard form POST.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := checkPayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}

// SubmitAjax validates the AJAX variant, which accepts JSON or form data and
// always answers in the {success, message} shape, even for a malformed body.
func SubmitAjax() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContactPayload)
		if err := c.BodyParser(reqData); err != nil {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Something went wrong. Please try again.",
			})
		}

		if errors := checkPayload(reqData); len(errors) > 0 {
			return c.JSON(fiber.Map{
				"success": false,
				"message": "Please fill in all required fields.",
			})
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
