package rtoOfficeRoutes

import (
	rtoOfficeController "vahan/controllers/rtoOffice"
	"vahan/middleware"
	"vahan/models"
	rtoOfficeValidator "vahan/validators/rtoOffice"

	"github.com/gofiber/fiber/v2"
)

func SetupRtoOfficeRoutes(app *fiber.App) {
	officeGroup := app.Group("/rto/offices")

	// SUPER_ADMIN only routes
	officeGroup.Post("/", rtoOfficeValidator.Create(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), rtoOfficeController.CreateOffice)
	officeGroup.Put("/:id", rtoOfficeValidator.Update(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), rtoOfficeController.UpdateOffice)
	officeGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin), rtoOfficeController.RemoveOffice)

	// All authenticated users
	officeGroup.Get("/", middleware.JWTMiddleware, rtoOfficeController.ListOffices)
	officeGroup.Get("/:id", middleware.JWTMiddleware, rtoOfficeController.GetOffice)
}
