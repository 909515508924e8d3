package challanValidator

import (
	"strings"

	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

// Issue validates a new challan
func Issue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VehicleID     uint    `json:"vehicleId"`
			ViolationType string  `json:"violationType"`
			Amount        float64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.VehicleID == 0 {
			errors["vehicleId"] = "Vehicle ID is required!"
		}
		if strings.TrimSpace(reqData.ViolationType) == "" {
			errors["violationType"] = "Violation type is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChallan", reqData)
		return c.Next()
	}
}

// Dispute validates the dispute reason
func Dispute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Dispute reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDispute", reqData)
		return c.Next()
	}
}

// Resolve validates the dispute resolution. The new status can only be
// UNPAID or CANCELLED.
func Resolve() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Resolution string `json:"resolution"`
			NewStatus  string `json:"newStatus"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Resolution) == "" {
			errors["resolution"] = "Resolution is required!"
		}
		if reqData.NewStatus != models.ChallanStatusUnpaid && reqData.NewStatus != models.ChallanStatusCancelled {
			errors["newStatus"] = "New status must be UNPAID or CANCELLED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResolve", reqData)
		return c.Next()
	}
}
