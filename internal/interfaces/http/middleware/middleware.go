package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/PavaniTiago/nr01-risk-api/internal/config"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

func SetupMiddlewares(app *fiber.App, cfg *config.Config, log *logger.Logger) {
	// Recuperar de panics nos handlers
	app.Use(recover.New())

	// ID por requisição, usado nos logs
	app.Use(requestid.New())

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, If-None-Match",
		AllowCredentials: cfg.CORSAllowOrigins != "*",
		MaxAge:           300, // 5 minutes
	}))

	app.Use(PerformanceLogger(log))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	Public  fiber.Router
	Company fiber.Router
	Sector  fiber.Router
}

// SetupRouteGroups configura os grupos de rotas
func SetupRouteGroups(app *fiber.App) RouteGroups {
	// Grupo público
	public := app.Group("/")

	// Rotas de uma empresa
	company := app.Group("/companies/:company_id")

	// Rotas de um setor da empresa
	sector := company.Group("/sectors/:sector_id")

	return RouteGroups{
		Public:  public,
		Company: company,
		Sector:  sector,
	}
}
