package userController

import (
	"finacademy/config"
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"finacademy/utils"
	userValidator "finacademy/validators/userValidator"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the account fields, avatar and the user's current cart.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		log.Printf("Error fetching profile for user %d: %v", userID, err)
	}

	var cartItems []models.CartItem
	if err := db.Where("user_id = ?", userID).Preload("Course").Find(&cartItems).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"avatar":     utils.GetFileURL(profile.Image),
		"cart_items": cartItems,
	})
}

// UpdateProfile applies the account sub-form and the optional avatar upload
// together: every check runs before anything is written, so a bad avatar
// leaves the account fields untouched and vice versa.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedProfile").(*userValidator.ProfilePayload)
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	// Email must stay unique across accounts
	var other models.User
	if err := db.Where("email = ? AND id <> ?", reqData.Email, userID).First(&other).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	avatar, err := c.FormFile("image")
	if err != nil {
		avatar = nil // avatar sub-form is optional
	}
	if avatar != nil && !utils.IsImageFile(avatar.Filename) {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"image": "Avatar must be a jpg, jpeg, png or webp file!",
		})
	}

	avatarPath := ""
	if avatar != nil {
		avatarPath, err = utils.SaveUploadedFile(avatar, config.AppConfig.UploadDir)
		if err != nil {
			log.Printf("Error saving avatar for user %d: %v", userID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save avatar!", nil)
		}
	}

	// On rollback the already-written avatar file must not be left behind
	discardAvatar := func() {
		if avatarPath != "" {
			if err := os.Remove(avatarPath); err != nil {
				log.Printf("Error removing orphaned avatar %s: %v", avatarPath, err)
			}
		}
	}

	tx := db.Begin()
	user.Name = reqData.Name
	user.Email = reqData.Email
	if err := tx.Save(&user).Error; err != nil {
		tx.Rollback()
		discardAvatar()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}
	if avatarPath != "" {
		if err := tx.Model(&models.Profile{}).Where("user_id = ?", userID).Update("image", avatarPath).Error; err != nil {
			tx.Rollback()
			discardAvatar()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
		}
	}
	tx.Commit()

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", fiber.Map{
		"user":   user,
		"avatar": utils.GetFileURL(avatarPath),
	})
}
