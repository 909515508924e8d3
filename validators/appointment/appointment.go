package appointmentValidator

import (
	"strings"
	"time"

	"vahan/middleware"

	"github.com/gofiber/fiber/v2"
)

var purposes = map[string]bool{
	"DL_TEST":             true,
	"VEHICLE_INSPECTION":  true,
	"DOCUMENT_SUBMISSION": true,
}

// Book validates a new appointment
func Book() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RtoOfficeID     uint      `json:"rtoOfficeId"`
			Purpose         string    `json:"purpose"`
			AppointmentDate time.Time `json:"appointmentDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.RtoOfficeID == 0 {
			errors["rtoOfficeId"] = "RTO office is required!"
		}
		if !purposes[reqData.Purpose] {
			errors["purpose"] = "Purpose must be DL_TEST, VEHICLE_INSPECTION or DOCUMENT_SUBMISSION!"
		}
		if reqData.AppointmentDate.IsZero() {
			errors["appointmentDate"] = "Appointment date is required!"
		} else if reqData.AppointmentDate.Before(time.Now()) {
			errors["appointmentDate"] = "Appointment date must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBook", reqData)
		return c.Next()
	}
}

// Reschedule validates the new appointment date
func Reschedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			AppointmentDate time.Time `json:"appointmentDate"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AppointmentDate.IsZero() {
			errors["appointmentDate"] = "Appointment date is required!"
		} else if reqData.AppointmentDate.Before(time.Now()) {
			errors["appointmentDate"] = "Appointment date must be in the future!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReschedule", reqData)
		return c.Next()
	}
}

// Complete validates the completion notes (optional, length capped)
func Complete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Notes string `json:"notes"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Notes)) > 1000 {
			errors["notes"] = "Notes must be at most 1000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComplete", reqData)
		return c.Next()
	}
}
