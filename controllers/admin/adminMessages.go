package adminController

import (
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ListMessages returns the contact inbox, unread first.
func ListMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.Database.Db.
		Order("is_read asc, created_at desc").
		Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", fiber.Map{
		"messages": messages,
	})
}

// MarkMessageRead flips the read flag on a contact message.
func MarkMessageRead(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid message ID!", nil)
	}

	db := database.Database.Db

	var msg models.ContactMessage
	if err := db.First(&msg, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	msg.IsRead = true
	if err := db.Save(&msg).Error; err != nil {
		log.Printf("Error marking message %d read: %v", msg.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as read.", msg)
}
