package routes

import (
	"time"

	"donfundy/internal/adapters/http/handlers"
	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/adapters/persistence/repositories"
	"donfundy/internal/cache"
	"donfundy/internal/config"
	"donfundy/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application and returns the
// scheduled-job service for the caller to start and stop.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, store *cache.Store) *services.CronService {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	donationRepo := repositories.NewDonationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, donorRepo, cfg)
	campaignService := services.NewCampaignService(campaignRepo, donorRepo, store)
	donationService := services.NewDonationService(donationRepo, campaignRepo, donorRepo, store)
	donorService := services.NewDonorService(donorRepo, store)
	bulkService := services.NewBulkDonationService(donationRepo, campaignRepo, donorRepo, store)
	dashboardService := services.NewDashboardService(db)
	reportService := services.NewReportService(donationRepo, campaignRepo, cfg.ReportDir)
	cronService := services.NewCronService(reportService, authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	i18nHandler := handlers.NewI18nHandler()
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	donationHandler := handlers.NewDonationHandler(donationService)
	donorHandler := handlers.NewDonorHandler(donorService)
	bulkHandler := handlers.NewBulkDonationHandler(bulkService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, with the stricter limiter and no caching)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Locale routes (public)
	i18nRoutes := apiV1.Group("/i18n")
	setupI18nRoutes(i18nRoutes, i18nHandler)

	// Campaign routes (public reads, authenticated writes)
	campaignRoutes := apiV1.Group("/campaigns")
	setupCampaignRoutes(campaignRoutes, campaignHandler, cfg)

	// Donation routes
	donationRoutes := apiV1.Group("/donations")
	setupDonationRoutes(donationRoutes, donationHandler, cfg)

	// Bulk donation import (admin only)
	bulkRoutes := apiV1.Group("/bulk-donations")
	bulkRoutes.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	bulkRoutes.Post("/upload", middleware.UploadRateLimiter(), bulkHandler.Upload)

	// Donor routes (authenticated)
	donorRoutes := apiV1.Group("/donors")
	donorRoutes.Use(middleware.AuthMiddleware(cfg))
	setupDonorRoutes(donorRoutes, donorHandler)

	// Dashboard routes (admin only)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/admin", middleware.AdminOnly(), dashboardHandler.Admin)

	// Report routes (admin only)
	reportRoutes := apiV1.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	reportRoutes.Get("/donations", reportHandler.Donations)
	reportRoutes.Get("/campaigns", reportHandler.Campaigns)
	reportRoutes.Post("/generate", reportHandler.Generate)

	return cronService
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	router.Use(middleware.NoCacheHeaders())

	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupI18nRoutes configures locale routes
func setupI18nRoutes(router fiber.Router, handler *handlers.I18nHandler) {
	router.Get("/languages", middleware.BundleCache(), handler.Languages)
	router.Get("/bundle", middleware.BundleCache(), handler.Bundle)
	router.Put("/language", handler.SetLanguage)
}

// setupCampaignRoutes configures campaign routes
func setupCampaignRoutes(router fiber.Router, handler *handlers.CampaignHandler, cfg *config.Config) {
	// Public reads (identity is attached when a token is present)
	router.Get("/", middleware.OptionalAuth(cfg), handler.List)
	router.Get("/my-campaigns", middleware.AuthMiddleware(cfg), middleware.PrivateCacheHeaders(30*time.Second), handler.ListMine)
	router.Get("/:id", middleware.OptionalAuth(cfg), handler.Get)

	// Authenticated writes
	router.Post("/", middleware.AuthMiddleware(cfg), handler.Create)
	router.Put("/:id", middleware.AuthMiddleware(cfg), handler.Update)
	router.Delete("/:id", middleware.AuthMiddleware(cfg), handler.Delete)
}

// setupDonationRoutes configures donation routes
func setupDonationRoutes(router fiber.Router, handler *handlers.DonationHandler, cfg *config.Config) {
	// Public reads
	router.Get("/", middleware.OptionalAuth(cfg), handler.List)
	router.Get("/mine", middleware.AuthMiddleware(cfg), middleware.PrivateCacheHeaders(30*time.Second), handler.ListMine)
	router.Get("/:id", middleware.OptionalAuth(cfg), handler.Get)

	// Authenticated writes
	router.Post("/", middleware.AuthMiddleware(cfg), handler.Create)

	// Admin operations
	router.Delete("/:id", middleware.AuthMiddleware(cfg), middleware.AdminOnly(), handler.Delete)
}

// setupDonorRoutes configures donor routes (authenticated)
func setupDonorRoutes(router fiber.Router, handler *handlers.DonorHandler) {
	router.Get("/me", handler.Me)

	// Admin only
	router.Get("/", middleware.AdminOnly(), handler.List)
	router.Get("/user/:userId", middleware.AdminOnly(), handler.GetByUser)
	router.Get("/:id", middleware.AdminOnly(), handler.Get)
	router.Post("/", middleware.AdminOnly(), handler.Create)
	router.Put("/:id", middleware.AdminOnly(), handler.Update)
	router.Delete("/:id", middleware.AdminOnly(), handler.Delete)
}
