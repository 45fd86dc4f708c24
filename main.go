package main

import (
	"finacademy/config"
	"finacademy/database"
	adminRoutes "finacademy/routers/adminRoutes"
	authRoutes "finacademy/routers/authRoutes"
	cartRoutes "finacademy/routers/cartRoutes"
	catalogRoutes "finacademy/routers/catalogRoutes"
	contactRoutes "finacademy/routers/contactRoutes"
	courseRoutes "finacademy/routers/courseRoutes"
	userRoutes "finacademy/routers/userRoutes"
	"finacademy/utils"
	"log"

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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded avatars
	app.Static("/uploads", config.AppConfig.UploadDir)

	catalogRoutes.SetupCatalogRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	contactRoutes.SetupContactRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	utils.InitializeCartJanitor()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
