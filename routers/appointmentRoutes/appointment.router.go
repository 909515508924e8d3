package appointmentRoutes

import (
	appointmentController "vahan/controllers/appointment"
	"vahan/middleware"
	"vahan/models"
	appointmentValidator "vahan/validators/appointment"

	"github.com/gofiber/fiber/v2"
)

func SetupAppointmentRoutes(app *fiber.App) {
	appointmentGroup := app.Group("/appointments")

	// Admin/officer - all appointments
	appointmentGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleSuperAdmin, models.RoleRtoAdmin, models.RoleRtoOfficer), appointmentController.ListAppointments)

	// Citizen - my appointments
	appointmentGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), appointmentController.GetMyAppointments)

	// Get appointment by ID
	appointmentGroup.Get("/:id", middleware.JWTMiddleware, appointmentController.GetAppointment)

	// Citizen - book / reschedule / cancel own appointments
	appointmentGroup.Post("/book", appointmentValidator.Book(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), appointmentController.BookAppointment)
	appointmentGroup.Put("/:id/reschedule", appointmentValidator.Reschedule(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), appointmentController.RescheduleAppointment)
	appointmentGroup.Put("/:id/cancel", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleCitizen), appointmentController.CancelAppointment)

	// Officer - complete an appointment
	appointmentGroup.Put("/:id/complete", appointmentValidator.Complete(), middleware.JWTMiddleware, middleware.RequireRoles(models.RoleRtoOfficer, models.RoleRtoAdmin), appointmentController.CompleteAppointment)
}
