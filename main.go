package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/hbc-community/community-backend/database"
	"github.com/hbc-community/community-backend/internal/config"
	"github.com/hbc-community/community-backend/internal/handlers"
	"github.com/hbc-community/community-backend/internal/models"
	"github.com/hbc-community/community-backend/internal/routes"
	"github.com/hbc-community/community-backend/internal/services"
	"github.com/hbc-community/community-backend/internal/storage"
)

const version = "1.0.0"

func main() {
	// Load .env file for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found - checking environment variables")
	}

	cfg := config.Load()

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("⚠️  Mail credentials not found - OTP delivery will fail")
	}

	// Initialize storage
	var store storage.Store

	if os.Getenv("USE_MEMORY_STORE") == "true" {
		log.Println("⚠️  Using in-memory storage (not for production!)")
		store = storage.NewMemoryStore()
	} else {
		log.Println("📦 Connecting to PostgreSQL database...")
		database.Connect(cfg.DatabaseURL)

		log.Println("🔄 Running database migrations...")
		if err := database.DB.AutoMigrate(&models.Submission{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		log.Println("✅ Database migrations completed!")

		store = storage.NewDatabaseStore(database.DB)
	}

	// Initialize services
	otps := services.NewOTPRegistry(time.Duration(cfg.OTPTTLMinutes) * time.Minute)
	mailer := services.NewSMTPMailer(cfg)

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Bharat Community Backend v" + version,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ", "),
		AllowMethods: "GET, POST, PUT, DELETE",
		AllowHeaders: "Content-Type, Authorization",
	}))

	// Health check endpoints
	health := handlers.NewHealthHandler(version, getStorageType())
	app.Get("/", health.Check)
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		statusCode := 200

		if os.Getenv("USE_MEMORY_STORE") != "true" && database.DB != nil {
			sqlDB, err := database.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				status = "unhealthy"
				statusCode = 503
			}
		}

		return c.Status(statusCode).JSON(fiber.Map{
			"status": status,
			"services": fiber.Map{
				"database": status == "healthy",
				"mail":     cfg.EmailUser != "",
			},
		})
	})

	routes.SetupRoutes(app, store, otps, mailer)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Bharat Community Backend starting on port %s", cfg.Port)
	log.Printf("📊 Storage: %s", getStorageType())
	log.Printf("📧 Mail: %s", getMailStatus(cfg.EmailUser))
	log.Printf("🔐 OTP validity: %d minutes", cfg.OTPTTLMinutes)
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}

func getStorageType() string {
	if os.Getenv("USE_MEMORY_STORE") == "true" {
		return "In-Memory (Testing)"
	}
	return "PostgreSQL Database"
}

func getMailStatus(emailUser string) string {
	if emailUser == "" {
		return "Not configured"
	}
	return "Configured"
}
