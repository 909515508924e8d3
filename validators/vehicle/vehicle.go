package vehicleValidator

import (
	"strings"
	"time"

	"vahan/middleware"

	"github.com/gofiber/fiber/v2"
)

var vehicleTypes = map[string]bool{
	"TWO_WHEELER":  true,
	"FOUR_WHEELER": true,
	"COMMERCIAL":   true,
}

// Register validates a new vehicle registration request
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VehicleType   string `json:"vehicleType"`
			Make          string `json:"make"`
			Model         string `json:"model"`
			Year          int    `json:"year"`
			Color         string `json:"color"`
			EngineNumber  string `json:"engineNumber"`
			ChassisNumber string `json:"chassisNumber"`
			RtoOfficeID   uint   `json:"rtoOfficeId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !vehicleTypes[reqData.VehicleType] {
			errors["vehicleType"] = "Vehicle type must be TWO_WHEELER, FOUR_WHEELER or COMMERCIAL!"
		}
		if reqData.Year < 1950 || reqData.Year > time.Now().Year()+1 {
			errors["year"] = "Invalid manufacturing year!"
		}
		if strings.TrimSpace(reqData.EngineNumber) == "" {
			errors["engineNumber"] = "Engine number is required!"
		}
		if strings.TrimSpace(reqData.ChassisNumber) == "" {
			errors["chassisNumber"] = "Chassis number is required!"
		}
		if reqData.RtoOfficeID == 0 {
			errors["rtoOfficeId"] = "RTO office is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVehicle", reqData)
		return c.Next()
	}
}

// Reject validates the rejection reason
func Reject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Reason string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Reason) == "" {
			errors["reason"] = "Rejection reason is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReject", reqData)
		return c.Next()
	}
}

// Transfer validates an ownership transfer request
func Transfer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NewOwnerEmail string `json:"newOwnerEmail"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.NewOwnerEmail) == "" {
			errors["newOwnerEmail"] = "New owner email is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransfer", reqData)
		return c.Next()
	}
}
