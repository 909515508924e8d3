package analyticsRoutes

import (
	analyticsController "vahan/controllers/analytics"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analyticsGroup := app.Group("/analytics")

	// Dashboard - admin/auditor
	analyticsGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleAuditor), analyticsController.GetDashboard)

	// Revenue analytics - admin/auditor
	analyticsGroup.Get("/revenue", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleAuditor), analyticsController.GetRevenue)

	// Violation analytics - admin/auditor/police
	analyticsGroup.Get("/violations", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleAuditor, models.RolePolice), analyticsController.GetViolations)

	// Risk assessment - admin only
	analyticsGroup.Get("/ml-risk", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), analyticsController.GetRiskAssessment)
}
