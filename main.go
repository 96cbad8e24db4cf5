package main

import (
	"fmt"
	"os"
	"time"

	"venue-booking/database"
	"venue-booking/database/seeders"
	"venue-booking/logger"
	"venue-booking/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	app := fiber.New(fiber.Config{
		ReadBufferSize:  32768, // 32KB read buffer
		WriteBufferSize: 32768, // 32KB write buffer
		ReadTimeout:     time.Second * 30,
		WriteTimeout:    time.Second * 30,
		BodyLimit:       10 * 1024 * 1024, // 10MB body limit
	})
	env := godotenv.Load()
	if env != nil {
		logger.Error("Error loading .env file", env)
		fmt.Println("Error loading .env file", env)
	}

	db, err := database.InitDB()
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return
	}

	rdb := database.InitRedis()

	if err := seeders.SeedDemoVenues(db); err != nil {
		logger.Error("Failed to seed demo venues", err)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     os.Getenv("FRONTEND_URL"),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	routes.SetupRoutes(app, db, rdb)

	app_host := os.Getenv("APP_HOST")
	app_port := os.Getenv("APP_PORT")
	logger.Success("Server is running on ip: " + app_host + " port: " + app_port)
	if err := app.Listen(app_host + ":" + app_port); err != nil {
		logger.Fatal("Server stopped: " + err.Error())
	}
}
