package authRoutes

import (
	authController "vahan/controllers/auth"
	"vahan/middleware"
	authValidator "vahan/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/forgot-password", authValidator.ForgotPassword(), authController.ForgotPassword)
	authGroup.Post("/reset-password", authValidator.ResetPassword(), authController.ResetPassword)
	authGroup.Put("/change-password", authValidator.ChangePassword(), middleware.JWTMiddleware, authController.ChangePassword)
}
