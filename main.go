package main

import (
	"log"

	"tchadskills/config"
	"tchadskills/database"
	authRoutes "tchadskills/routers/authRoutes"
	categoryRoutes "tchadskills/routers/categoryRoutes"
	certificateRoutes "tchadskills/routers/certificateRoutes"
	courseRoutes "tchadskills/routers/courseRoutes"
	enrollmentRoutes "tchadskills/routers/enrollmentRoutes"
	paymentRoutes "tchadskills/routers/paymentRoutes"
	"tchadskills/utils"

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
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)

	// Resolve pending mobile-money payments in the background
	utils.StartPaymentScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
