package main

import (
	"DineWheel/config/database"
	"DineWheel/config/environment"
	"DineWheel/middleware"
	v1 "DineWheel/routes/v1"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
)

func main() {

	// Load environment variables
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️  No .env file found, using default values")
	}

	// Firestore keeps settings and history across sessions
	database.InitFirebase()

	// Setup Gin router
	r := gin.Default()

	r.Use(middleware.ErrorHandlerMiddleware())

	// CORS Middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Register all routes
	v1.RegisterRoutes(r)

	port := environment.GetPort()
	log.Println("🚀 Server running on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
