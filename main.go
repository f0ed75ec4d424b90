package main

import (
	"log"

	"iapt/config"
	"iapt/database"
	authRoutes "iapt/routers/authRoutes"
	blogRoutes "iapt/routers/blogRoutes"
	courseRoutes "iapt/routers/courseRoutes"
	forumRoutes "iapt/routers/forumRoutes"
	paymentRoutes "iapt/routers/paymentRoutes"
	sessionRoutes "iapt/routers/sessionRoutes"
	userRoutes "iapt/routers/userRoutes"
	"iapt/utils"

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

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	forumRoutes.SetupForumRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	sessionRoutes.SetupSessionRoutes(app)

	utils.InitializeReconciliationSweeper()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
