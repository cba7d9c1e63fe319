package middleware

import (
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Config controla os middlewares globais
type Config struct {
	AllowOrigins string
	Log          *logger.Logger
}

func SetupMiddlewares(app *fiber.App, cfg Config) {
	app.Use(recover.New())

	// CORS configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	app.Use(RequestLogger(cfg.Log))
}

// RouteGroups define os grupos de rotas da API
type RouteGroups struct {
	// API é o prefixo /api/v1; rotas públicas são registradas direto nele
	API fiber.Router
	// Auth exige sessão e deve ser passado nas rotas protegidas
	Auth fiber.Handler
	// Identify resolve a sessão quando houver, sem exigir
	Identify fiber.Handler
}

// SetupRouteGroups cria o prefixo versionado e os middlewares de sessão
func SetupRouteGroups(app *fiber.App, sessions SessionResolver) RouteGroups {
	return RouteGroups{
		API:      app.Group("/api/v1"),
		Auth:     RequireSession(sessions),
		Identify: OptionalSession(sessions),
	}
}
