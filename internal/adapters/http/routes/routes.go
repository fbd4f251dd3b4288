package routes

import (
	"time"

	"caremate-health/internal/adapters/http/handlers"
	"caremate-health/internal/adapters/http/middleware"
	"caremate-health/internal/adapters/identity"
	"caremate-health/internal/adapters/persistence/repositories"
	"caremate-health/internal/catalog"
	"caremate-health/internal/config"
	"caremate-health/internal/core/services"
	"caremate-health/internal/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and returns the
// session controller so the caller can start and close it with the
// server lifecycle.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, cat *catalog.Catalog) *session.Controller {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	apptRepo := repositories.NewAppointmentRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, profileRepo, cfg)
	patientService := services.NewPatientService(apptRepo, orderRepo, cat)
	advisoryService := services.NewAdvisoryService(services.NewGenerativeClient(cfg.Advisory))

	// Identity gateway and session controller
	gateway := identity.NewGateway(authService, profileRepo, apptRepo, orderRepo)
	controller := session.NewController(gateway)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	sessionHandler := handlers.NewSessionHandler(controller)
	catalogHandler := handlers.NewCatalogHandler(cat)
	patientHandler := handlers.NewPatientHandler(patientService)
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryService)
	mobileHandler := handlers.NewMobileHandler(controller, cat)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, sessionHandler,
		catalogHandler, patientHandler, advisoryHandler, cfg)

	// API v2 group (Mobile-optimized)
	apiV2 := app.Group("/api/v2")
	setupAPIV2Routes(apiV2, mobileHandler, cfg)

	return controller
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	sessionHandler *handlers.SessionHandler,
	catalogHandler *handlers.CatalogHandler,
	patientHandler *handlers.PatientHandler,
	advisoryHandler *handlers.AdvisoryHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Session controller routes
	sessionRoutes := router.Group("/session")
	sessionRoutes.Use(middleware.NoCacheHeaders())
	setupSessionRoutes(sessionRoutes, sessionHandler)

	// Catalog routes (public, static data)
	catalogRoutes := router.Group("/catalog")
	catalogRoutes.Use(middleware.CatalogCache())
	setupCatalogRoutes(catalogRoutes, catalogHandler)

	// Patient routes (patient role only)
	patientRoutes := router.Group("/patient")
	patientRoutes.Use(middleware.AuthMiddleware(cfg))
	patientRoutes.Use(middleware.PatientOnly())
	patientRoutes.Use(middleware.PrivateCacheHeaders(30 * time.Second))
	setupPatientRoutes(patientRoutes, patientHandler)

	// Advisory routes (public, rate-limited)
	advisoryRoutes := router.Group("/advisory")
	advisoryRoutes.Post("/ask", middleware.AdvisoryRateLimiter(), advisoryHandler.Ask)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (rate-limited against credential stuffing)
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupSessionRoutes configures session controller routes
func setupSessionRoutes(router fiber.Router, handler *handlers.SessionHandler) {
	router.Get("/", handler.Snapshot)
	router.Post("/sign-in", middleware.AuthRateLimiter(), handler.SignIn)
	router.Post("/sign-up", middleware.AuthRateLimiter(), handler.SignUp)
	router.Post("/sign-out", handler.SignOut)
	router.Post("/banner/dismiss", handler.DismissBanner)
}

// setupCatalogRoutes configures catalog routes
func setupCatalogRoutes(router fiber.Router, handler *handlers.CatalogHandler) {
	router.Get("/doctors", handler.SearchDoctors)
	router.Get("/doctors/:id", handler.GetDoctor)
	router.Get("/specialties", handler.GetSpecialties)
	router.Get("/clinics", handler.GetClinics)
	router.Get("/clinics/:id", handler.GetClinic)
	router.Get("/medicines", handler.SearchMedicines)
	router.Get("/lab-tests", handler.SearchLabTests)
	router.Get("/videos", handler.GetVideos)
	router.Get("/about", handler.GetAbout)
}

// setupPatientRoutes configures patient routes
func setupPatientRoutes(router fiber.Router, handler *handlers.PatientHandler) {
	router.Get("/appointments", handler.ListAppointments)
	router.Post("/appointments", handler.BookAppointment)
	router.Post("/appointments/:id/cancel", handler.CancelAppointment)

	router.Get("/orders", handler.ListOrders)
	router.Post("/orders", handler.CreateOrder)
	router.Get("/orders/:id", handler.GetOrder)
}

// setupAPIV2Routes configures API v2 routes (Mobile-optimized)
func setupAPIV2Routes(router fiber.Router, mobileHandler *handlers.MobileHandler, cfg *config.Config) {
	// Mobile routes group
	mobileRoutes := router.Group("/mobile")
	mobileRoutes.Use(middleware.OptionalAuth(cfg))

	// GET /api/v2/mobile/bootstrap
	mobileRoutes.Get("/bootstrap", mobileHandler.Bootstrap)
}
