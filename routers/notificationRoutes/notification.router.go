package notificationRoutes

import (
	notificationController "vahan/controllers/notification"
	"vahan/middleware"
	"vahan/models"
	notificationValidator "vahan/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationController.GetMyNotifications)
	notificationGroup.Put("/:id/read", middleware.JWTMiddleware, notificationController.MarkAsRead)
	notificationGroup.Post("/send", notificationValidator.Send(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), notificationController.SendNotification)
}
