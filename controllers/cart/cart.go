package cartController

import (
	"errors"
	"finacademy/database"
	"finacademy/middleware"
	"finacademy/models"
	"finacademy/utils"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func cartCount(identity middleware.Identity) int64 {
	var count int64
	identity.Scope(database.Database.Db.Model(&models.CartItem{})).Count(&count)
	return count
}

func cartTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Course.Price
	}
	return total
}

func loadCart(identity middleware.Identity) ([]models.CartItem, error) {
	var items []models.CartItem
	err := identity.Scope(database.Database.Db).
		Preload("Course").
		Order("created_at asc").
		Find(&items).Error
	return items, err
}

// AddToCart puts a course in the visitor's cart. Repeated adds are a no-op.
// An anonymous visitor gets a session key on the first call.
func AddToCart(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Course not found",
		})
	}

	identity := middleware.EnsureVisitorIdentity(c)

	var existing models.CartItem
	err := identity.Scope(db).Where("course_id = ?", course.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ownerID, sessionKey := identity.CartOwner()
		item := models.CartItem{UserID: ownerID, SessionKey: sessionKey, CourseID: course.ID}
		if createErr := db.Create(&item).Error; createErr != nil {
			// A racing duplicate add trips the owner+course unique index.
			// Re-check before giving up: if the row is there now, the add
			// already succeeded from the visitor's point of view.
			if recheck := identity.Scope(db).Where("course_id = ?", course.ID).First(&existing).Error; recheck != nil {
				log.Printf("Error adding course %d to cart: %v", course.ID, createErr)
				return c.JSON(fiber.Map{
					"success": false,
					"message": "Failed to add course to cart",
				})
			}
		}
	} else if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to add course to cart",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    fmt.Sprintf("Course %q added to cart", course.Title),
		"cart_count": cartCount(identity),
	})
}

// CartDetail lists the visitor's cart with the running total. The total is
// recomputed from course prices on every read; nothing is persisted.
func CartDetail(c *fiber.Ctx) error {
	identity := middleware.VisitorIdentity(c)

	if identity.IsZero() {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
			"cart_items":  []models.CartItem{},
			"total_price": 0.0,
		})
	}

	items, err := loadCart(identity)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", fiber.Map{
		"cart_items":  items,
		"total_price": cartTotal(items),
	})
}

// RemoveFromCart deletes a cart item owned by the visitor. An item belonging
// to someone else reads as not found.
func RemoveFromCart(c *fiber.Ctx) error {
	itemID := c.Locals("itemID").(int)
	db := database.Database.Db

	identity := middleware.VisitorIdentity(c)
	if identity.IsZero() {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Session not found",
		})
	}

	var item models.CartItem
	if err := identity.Scope(db).Where("id = ?", itemID).First(&item).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Item not found",
		})
	}

	if err := db.Delete(&item).Error; err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to remove item from cart",
		})
	}

	items, err := loadCart(identity)
	if err != nil {
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch cart",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Course removed from cart",
		"cart_count":  int64(len(items)),
		"total_price": cartTotal(items),
	})
}

// Checkout turns the authenticated user's cart into enrollments. Paid carts
// require a captured payment reference; enrollment creation is idempotent and
// the cart is emptied afterwards.
func Checkout(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db
	identity := middleware.UserIdentity(userID)

	items, err := loadCart(identity)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}
	if len(items) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart is empty!", nil)
	}

	total := cartTotal(items)
	if total > 0 {
		reqData := new(struct {
			PaymentRef string `json:"payment_ref"`
		})
		if err := c.BodyParser(reqData); err != nil || reqData.PaymentRef == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment reference is required!", nil)
		}

		captured, err := utils.VerifyPayment(reqData.PaymentRef, total)
		if err != nil {
			log.Printf("Error verifying payment %s: %v", reqData.PaymentRef, err)
			return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Payment verification failed!", nil)
		}
		if !captured {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment not captured!", nil)
		}
	}

	enrolled := 0
	tx := db.Begin()
	for _, item := range items {
		var existing models.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", userID, item.CourseID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			enrollment := models.Enrollment{UserID: userID, CourseID: item.CourseID}
			if err := tx.Create(&enrollment).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in courses!", nil)
			}
			enrolled++
		} else if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in courses!", nil)
		}
	}
	if err := identity.Scope(tx).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to clear cart!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout completed successfully!", fiber.Map{
		"enrolled_count": enrolled,
		"total_paid":     total,
	})
}
