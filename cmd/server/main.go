package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caremate-health/internal/adapters/http/middleware"
	"caremate-health/internal/adapters/http/routes"
	"caremate-health/internal/adapters/persistence/models"
	"caremate-health/internal/adapters/persistence/repositories"
	"caremate-health/internal/catalog"
	"caremate-health/internal/config"
	"caremate-health/internal/core/services"
	"caremate-health/internal/core/session"

	"github.com/gofiber/fiber/v2"
)

// @title CareMate Health API
// @version 1.0
// @description Health directory and patient services API
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@caremate.health

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host api.caremate.health
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

	// Build the static catalog once at startup
	cat := catalog.Load()
	log.Printf("✅ Catalog loaded: %d doctors, %d clinics, %d medicines",
		len(cat.Doctors()), len(cat.Clinics()), len(cat.Medicines()))

	// Start appointment reminder cron (08:30 daily)
	reminderService := services.NewReminderService(repositories.NewAppointmentRepository(db))
	reminderService.Start()
	defer reminderService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CareMate Health API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	controller := routes.Setup(app, db, cfg, cat)

	// Start the session controller; it blocks until the initial
	// session state has resolved
	startCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := controller.Start(startCtx); err != nil {
		cancel()
		log.Fatalf("❌ Failed to start session controller: %v", err)
	}
	cancel()
	defer controller.Close()
	log.Printf("✅ Session controller started [state: %s]", controller.State())

	// Graceful shutdown
	go gracefulShutdown(app, controller)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App, controller *session.Controller) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	controller.Close()
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
