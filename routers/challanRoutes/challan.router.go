package challanRoutes

import (
	challanController "vahan/controllers/challan"
	"vahan/middleware"
	"vahan/models"
	challanValidator "vahan/validators/challan"

	"github.com/gofiber/fiber/v2"
)

func SetupChallanRoutes(app *fiber.App) {
	challanGroup := app.Group("/challans")

	// Admin/police can view all challans
	challanGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RolePolice), challanController.ListChallans)

	// Citizens can view their own challans
	challanGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), challanController.GetMyChallans)

	// Authenticated users can view challans by vehicle
	challanGroup.Get("/vehicle/:vehicleId", middleware.JWTMiddleware, challanController.GetVehicleChallans)

	// Get challan by ID
	challanGroup.Get("/:id", middleware.JWTMiddleware, challanController.GetChallan)

	// Police only
	challanGroup.Post("/", challanValidator.Issue(), middleware.JWTMiddleware, middleware.RequireRoles(models.RolePolice), challanController.IssueChallan)

	// Citizen can dispute a challan on their own vehicle
	challanGroup.Post("/:id/dispute", challanValidator.Dispute(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), challanController.DisputeChallan)

	// Admin can resolve a dispute
	challanGroup.Put("/:id/resolve", challanValidator.Resolve(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), challanController.ResolveDispute)
}
