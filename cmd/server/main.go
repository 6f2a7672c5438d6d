package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/adapters/http/routes"
	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/cache"
	"donfundy/internal/config"

	"github.com/gofiber/fiber/v2"
)

// @title DonFundy API
// @version 1.0
// @description Donation platform API for campaigns, donations, and donors
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@donfundy.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.donfundy.com
// @BasePath /api/v1
// @schemes https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the admin account and the anonymous donor
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Query cache shared by the read endpoints
	store, err := cache.NewStore(cfg.CacheSize, cache.DefaultTTL)
	if err != nil {
		log.Fatalf("❌ Failed to build query cache: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "DonFundy API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	cronService := routes.Setup(app, db, cfg, store)

	// Scheduled jobs: daily donation report, hourly token cleanup
	if err := cronService.Start(); err != nil {
		log.Fatalf("❌ Failed to start scheduled jobs: %v", err)
	}
	defer cronService.Stop()

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
