package paymentRoutes

import (
	paymentController "vahan/controllers/payment"
	"vahan/middleware"
	"vahan/models"
	paymentValidator "vahan/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	// Admin/auditor - all payments
	paymentGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleAuditor), paymentController.ListPayments)

	// Citizen - payment history
	paymentGroup.Get("/history", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), paymentController.GetMyPayments)

	// Get payment by ID
	paymentGroup.Get("/:id", middleware.JWTMiddleware, paymentController.GetPayment)

	// Citizen - initiate a payment
	paymentGroup.Post("/initiate", paymentValidator.Initiate(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), paymentController.InitiatePayment)

	// Citizen - pay challan directly (legacy)
	paymentGroup.Post("/pay/:challanId", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), paymentController.PayChallan)

	// Verify/fail a pending payment
	paymentGroup.Put("/:id/verify", paymentValidator.Verify(), middleware.JWTMiddleware, paymentController.VerifyPayment)
	paymentGroup.Post("/:id/fail", middleware.JWTMiddleware, paymentController.FailPayment)

	// Admin - refund a payment
	paymentGroup.Post("/:id/refund", paymentValidator.Refund(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin), paymentController.RefundPayment)
}
