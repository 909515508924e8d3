package userValidator

import (
	"vahan/middleware"
	"vahan/models"

	"github.com/gofiber/fiber/v2"
)

var userStatuses = map[string]bool{
	models.UserStatusActive:    true,
	models.UserStatusBlocked:   true,
	models.UserStatusSuspended: true,
}

// UpdateProfile validates the self-service profile update
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name          string `json:"name"`
			Phone         string `json:"phone"`
			Address       string `json:"address"`
			AadhaarNumber string `json:"aadhaarNumber"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.AadhaarNumber != "" && len(reqData.AadhaarNumber) != 12 {
			errors["aadhaarNumber"] = "Aadhaar number must be 12 digits!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}

// UserStatus validates an admin status change
func UserStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !userStatuses[reqData.Status] {
			errors["status"] = "Status must be ACTIVE, BLOCKED or SUSPENDED!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUserStatus", reqData)
		return c.Next()
	}
}

// AssignRole validates a role assignment against the authoritative role set
func AssignRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID      uint   `json:"userId"`
			Role        string `json:"role"`
			RtoOfficeID *uint  `json:"rtoOfficeId"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if !models.IsValidRole(reqData.Role) {
			errors["role"] = "Invalid role!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssignRole", reqData)
		return c.Next()
	}
}
