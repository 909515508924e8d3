package main

import (
	"log"
	"vahan/config"
	"vahan/database"
	analyticsRoutes "vahan/routers/analyticsRoutes"
	appointmentRoutes "vahan/routers/appointmentRoutes"
	authRoutes "vahan/routers/authRoutes"
	challanRoutes "vahan/routers/challanRoutes"
	dlRoutes "vahan/routers/dlRoutes"
	notificationRoutes "vahan/routers/notificationRoutes"
	paymentRoutes "vahan/routers/paymentRoutes"
	rtoOfficeRoutes "vahan/routers/rtoOfficeRoutes"
	userRoutes "vahan/routers/userRoutes"
	vehicleRoutes "vahan/routers/vehicleRoutes"
	"vahan/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	rtoOfficeRoutes.SetupRtoOfficeRoutes(app)
	vehicleRoutes.SetupVehicleRoutes(app)
	dlRoutes.SetupDlRoutes(app)
	challanRoutes.SetupChallanRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	appointmentRoutes.SetupAppointmentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	analyticsRoutes.SetupAnalyticsRoutes(app)

	// Nightly sweep that expires driving licenses past their validity date.
	utils.StartLicenseScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
