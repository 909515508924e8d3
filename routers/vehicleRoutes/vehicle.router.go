package vehicleRoutes

import (
	vehicleController "vahan/controllers/vehicle"
	"vahan/middleware"
	"vahan/models"
	vehicleValidator "vahan/validators/vehicle"

	"github.com/gofiber/fiber/v2"
)

func SetupVehicleRoutes(app *fiber.App) {
	vehicleGroup := app.Group("/vehicles")

	// Citizen routes
	vehicleGroup.Post("/register", vehicleValidator.Register(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), vehicleController.RegisterVehicle)
	vehicleGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), vehicleController.GetMyVehicles)
	vehicleGroup.Post("/:id/transfer", vehicleValidator.Transfer(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), vehicleController.TransferVehicle)

	// Admin routes
	vehicleGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), vehicleController.ListVehicles)
	vehicleGroup.Put("/:id/scrap", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), vehicleController.ScrapVehicle)

	// Officer routes
	vehicleGroup.Put("/:id/verify", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoOfficer), vehicleController.VerifyVehicle)
	vehicleGroup.Put("/:id/reject", vehicleValidator.Reject(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoOfficer, models.RoleRtoAdmin), vehicleController.RejectVehicle)

	// RTO_ADMIN routes
	vehicleGroup.Put("/:id/approve", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoAdmin), vehicleController.ApproveVehicle)

	// All authenticated users
	vehicleGroup.Get("/:id", middleware.JWTMiddleware, vehicleController.GetVehicle)
}
