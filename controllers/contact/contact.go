package contactController

import (
	"finacademy/config"
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"finacademy/utils"
	contactValidator "finacademy/validators/contact"
	"log"

	"github.com/gofiber/fiber/v2"
)

func buildMessage(c *fiber.Ctx, reqData *contactValidator.ContactPayload) models.ContactMessage {
	msg := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Message: reqData.Message,
	}

	// Attach the sender when the submitter is logged in
	if userID, ok := c.Locals("userId").(uint); ok && userID != 0 {
		msg.SenderID = &userID
	}

	return msg
}

func notifyStaff(msg models.ContactMessage) {
	if config.AppConfig.SendgridKey == "" {
		return
	}
	go func() {
		if err := utils.SendContactNotification(msg); err != nil {
			log.Printf("Error sending contact notification: %v", err)
		}
	}()
}

// Submit handles the standard contact form POST.
func Submit(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*contactValidator.ContactPayload)

	msg := buildMessage(c, reqData)
	if err := database.Database.Db.Create(&msg).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send your message!", nil)
	}

	notifyStaff(msg)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thanks, your message has been sent!", nil)
}

// SubmitAjax handles the AJAX variant and answers in {success, message} shape.
func SubmitAjax(c *fiber.Ctx) error {
	reqData := c.Locals("validatedContact").(*contactValidator.ContactPayload)

	msg := buildMessage(c, reqData)
	if err := database.Database.Db.Create(&msg).Error; err != nil {
		log.Printf("Error saving contact message: %v", err)
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Something went wrong. Please try again.",
		})
	}

	notifyStaff(msg)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thanks, your message has been sent!",
	})
}
