package dlRoutes

import (
	dlController "vahan/controllers/dl"
	"vahan/middleware"
	"vahan/models"
	dlValidator "vahan/validators/dl"

	"github.com/gofiber/fiber/v2"
)

func SetupDlRoutes(app *fiber.App) {
	dlGroup := app.Group("/dl")

	// Citizen routes
	dlGroup.Post("/apply", dlValidator.Apply(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), dlController.ApplyForDl)
	dlGroup.Get("/applications/my", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), dlController.GetMyApplications)
	dlGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), dlController.GetMyLicenses)
	dlGroup.Post("/:dlNumber/renew", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), dlController.RenewLicense)

	// Admin routes
	dlGroup.Get("/applications", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleRtoOfficer), dlController.ListApplications)
	dlGroup.Get("/applications/:id", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleRtoOfficer), dlController.GetApplication)
	dlGroup.Post("/applications/:id/schedule-test", dlValidator.ScheduleTest(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoAdmin), dlController.ScheduleTest)
	dlGroup.Put("/applications/:id/approve", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoAdmin), dlController.ApproveApplication)
	dlGroup.Put("/applications/:id/reject", dlValidator.Reject(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoAdmin), dlController.RejectApplication)

	// Officer routes
	dlGroup.Put("/applications/:id/verify", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoOfficer), dlController.VerifyDocuments)
	dlGroup.Post("/applications/:id/test-result", dlValidator.TestResult(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoOfficer), dlController.RecordTestResult)

	// All authenticated users
	dlGroup.Get("/:dlNumber", middleware.JWTMiddleware, dlController.GetLicenseByNumber)
}
