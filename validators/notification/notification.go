package notificationValidator

import (
	"strings"

	"vahan/middleware"

	"github.com/gofiber/fiber/v2"
)

// Send validates an admin-sent notification
func Send() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID  uint   `json:"userId"`
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["userId"] = "User ID is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSend", reqData)
		return c.Next()
	}
}
