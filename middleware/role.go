package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRoles returns a middleware that allows the request through only if
// the authenticated user's role is in the allow-list. Must run after
// JWTMiddleware.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: role not found",
				"data":    nil,
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  false,
			"message": "Access forbidden: insufficient role!",
			"data":    nil,
		})
	}
}
