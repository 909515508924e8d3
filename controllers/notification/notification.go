package notificationController

import (
	"vahan/database"
	"vahan/middleware"
	"vahan/models"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMyNotifications returns the logged-in user's notifications
func GetMyNotifications(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var notifications []models.Notification
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("created_at DESC").Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications.", fiber.Map{"notifications": notifications})
}

// MarkAsRead flips IsRead on one of the caller's own notifications
func MarkAsRead(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification id!", nil)
	}

	res := database.Database.Db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userId).
		Update("is_read", true)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notification!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notification not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification marked as read.", nil)
}

// SendNotification lets an admin push a message to any user
func SendNotification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSend").(*struct {
		UserID  uint   `json:"userId"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	utils.NotifyUser(db, reqData.UserID, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification sent.", nil)
}
