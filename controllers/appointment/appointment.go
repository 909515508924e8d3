package appointmentController

import (
	"time"

	"vahan/database"
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// BookAppointment creates a BOOKED appointment for the logged-in citizen.
func BookAppointment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBook").(*struct {
		RtoOfficeID     uint      `json:"rtoOfficeId"`
		Purpose         string    `json:"purpose"`
		AppointmentDate time.Time `json:"appointmentDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var office models.RtoOffice
	if err := db.Where("id = ? AND status = ?", reqData.RtoOfficeID, models.OfficeStatusActive).First(&office).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "RTO office not found or inactive!", nil)
	}

	appointment := models.Appointment{
		UserID:          userId,
		RtoOfficeID:     reqData.RtoOfficeID,
		Purpose:         reqData.Purpose,
		AppointmentDate: reqData.AppointmentDate,
		Status:          models.AppointmentStatusBooked,
	}

	if err := db.Create(&appointment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to book appointment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Appointment booked.", fiber.Map{"appointment": appointment})
}

// ListAppointments returns all appointments (admin/officer)
func ListAppointments(c *fiber.Ctx) error {
	var appointments []models.Appointment
	if err := database.Database.Db.Order("appointment_date DESC").Find(&appointments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment list.", fiber.Map{"appointments": appointments})
}

// GetMyAppointments returns the logged-in citizen's appointments
func GetMyAppointments(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var appointments []models.Appointment
	if err := database.Database.Db.Where("user_id = ?", userId).
		Order("appointment_date DESC").Find(&appointments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch appointments!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "My appointments.", fiber.Map{"appointments": appointments})
}

// GetAppointment returns an appointment by id
func GetAppointment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid appointment id!", nil)
	}

	var appointment models.Appointment
	if err := database.Database.Db.First(&appointment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment fetched.", fiber.Map{"appointment": appointment})
}

// RescheduleAppointment updates the date in place while the appointment is
// still BOOKED. Only the owner may reschedule.
func RescheduleAppointment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid appointment id!", nil)
	}

	reqData, ok := c.Locals("validatedReschedule").(*struct {
		AppointmentDate time.Time `json:"appointmentDate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var appointment models.Appointment
	if err := db.First(&appointment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found!", nil)
	}
	if appointment.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to reschedule this appointment!", nil)
	}

	res := db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, models.AppointmentStatusBooked).
		Update("appointment_date", reqData.AppointmentDate)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reschedule appointment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found or invalid state!", nil)
	}

	db.First(&appointment, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment rescheduled.", fiber.Map{"appointment": appointment})
}

// CancelAppointment moves BOOKED -> CANCELLED. Cancelling twice is reported
// distinctly from a missing appointment.
func CancelAppointment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid appointment id!", nil)
	}

	db := database.Database.Db

	var appointment models.Appointment
	if err := db.First(&appointment, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found!", nil)
	}

	if appointment.UserID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to cancel this appointment!", nil)
	}

	if appointment.Status == models.AppointmentStatusCancelled {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Appointment already cancelled!", nil)
	}

	res := db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, models.AppointmentStatusBooked).
		Update("status", models.AppointmentStatusCancelled)
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel appointment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found or invalid state!", nil)
	}

	db.First(&appointment, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment cancelled.", fiber.Map{"appointment": appointment})
}

// CompleteAppointment moves BOOKED -> COMPLETED with the completing officer
// and optional notes.
func CompleteAppointment(c *fiber.Ctx) error {
	officerId := c.Locals("userId").(uint)

	id, err := c.ParamsInt("id")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid appointment id!", nil)
	}

	reqData, ok := c.Locals("validatedComplete").(*struct {
		Notes string `json:"notes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	now := time.Now()

	res := db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", id, models.AppointmentStatusBooked).
		Updates(map[string]interface{}{
			"status":           models.AppointmentStatusCompleted,
			"completed_by":     officerId,
			"completed_at":     now,
			"completion_notes": reqData.Notes,
		})
	if res.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete appointment!", nil)
	}
	if res.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Appointment not found or invalid state!", nil)
	}

	var appointment models.Appointment
	db.First(&appointment, id)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Appointment completed.", fiber.Map{"appointment": appointment})
}
