package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
	"github.com/PavaniTiago/nr01-risk-api/internal/config"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nr01-risk-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/nr01-risk-api/internal/interfaces/http/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, state risk.StateStore, log *logger.Logger) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Métricas Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Repositories
	repos := repositories.NewRepositories(db, cfg.CompanyCacheTTL)

	// Use Cases
	useCases := usecases.NewUseCases(repos, state, log)

	// Handlers
	h := handlers.NewHandlers(useCases)

	// Routes
	groups := middleware.SetupRouteGroups(app)

	// Companies routes
	groups.Public.Post("/companies", h.Company.CreateCompany)
	groups.Public.Get("/companies", h.Company.FindCompany)
	groups.Company.Get("/", h.Company.GetCompany)
	groups.Company.Put("/sectors", h.Company.UpdateSectors)
	groups.Company.Put("/status", h.Company.UpdateStatus)

	// Responses routes
	groups.Public.Post("/responses", h.Survey.SubmitResponse)
	groups.Company.Get("/responses", h.Survey.ListResponses)

	// Diagnostic routes
	groups.Company.Get("/diagnostic", h.Diagnostic.GetDiagnostic)
	groups.Company.Get("/dashboard", h.Dashboard.GetCompanyDashboard)
	groups.Sector.Post("/reconcile", h.Diagnostic.Reconcile)
	groups.Sector.Get("/probabilities", h.Diagnostic.ListProbabilities)
	groups.Sector.Put("/probabilities/:theme", h.Diagnostic.SetProbability)
	groups.Sector.Delete("/probabilities/:theme", h.Diagnostic.ClearProbability)

	// Reports routes
	groups.Sector.Post("/reports", h.Diagnostic.SaveReport)
	groups.Sector.Get("/reports", h.Diagnostic.ReportHistory)
	groups.Sector.Get("/reports/current", h.Diagnostic.GetCurrentReport)
	groups.Sector.Get("/reports/current/view", h.Diagnostic.ReportView)

	// Reviewer routes
	groups.Public.Get("/reviewer", h.Reviewer.GetProfile)
	groups.Public.Put("/reviewer", h.Reviewer.SaveProfile)
}
