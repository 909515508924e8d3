package userRoutes

import (
	userController "vahan/controllers/user"
	"vahan/middleware"
	"vahan/models"
	userValidator "vahan/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	// Profile routes (all authenticated users)
	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", userValidator.UpdateProfile(), middleware.JWTMiddleware, userController.UpdateProfile)

	// SUPER_ADMIN only routes
	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), userController.ListUsers)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), userController.RemoveUser)
	userGroup.Post("/assign-role", userValidator.AssignRole(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), userController.AssignRole)

	// Admin routes
	userGroup.Get("/:id", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), userController.GetUser)
	userGroup.Put("/:id", userValidator.UserStatus(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), userController.UpdateUserStatus)
}
