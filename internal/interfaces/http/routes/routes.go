package routes

import (
	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

func SetupRoutes(app *fiber.App, useCases *usecases.UseCases, log *logger.Logger) {
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	h := handlers.NewHandlers(useCases, log)
	groups := middleware.SetupRouteGroups(app, useCases.Auth)
	api, auth := groups.API, groups.Auth

	api.Get("/health", h.Health)

	// Autenticação
	api.Post("/auth/register", h.Register)
	api.Post("/auth/login", h.Login)
	api.Post("/auth/logout", auth, h.Logout)
	api.Get("/auth/session", h.SessionStatus)
	api.Get("/me", auth, h.Page("profile"), h.Me)

	// Planos são públicos
	api.Get("/plans", groups.Identify, h.Page("plans"), h.ListPlans)
	api.Get("/plans/:id", groups.Identify, h.Page("payment"), h.GetPlan)

	// Suitability
	api.Get("/suitability/questions", auth, h.Page("suitability"), h.GetQuestions)
	api.Get("/suitability/latest", auth, h.LatestSuitability)
	api.Get("/suitability", auth, h.ListSuitability)
	api.Post("/suitability", auth, h.SubmitSuitability)

	// Chat com o assessor
	api.Post("/chat", auth, h.StartChat)
	api.Get("/chat/:id", auth, h.Page("chat"), h.GetChat)
	api.Post("/chat/:id/messages", auth, h.SendMessage)
	api.Post("/chat/:id/end", auth, h.EndChat)
	api.Get("/sessions", auth, h.ListSessions)

	// Recomendações
	api.Get("/recommendations", auth, h.ListRecommendations)
	api.Post("/recommendations", auth, h.RequestRecommendation)
	api.Get("/recommendations/:id", auth, h.Page("recommendation"), h.GetRecommendation)
	api.Post("/recommendations/:id/invest", auth, h.InvestRecommendation)

	// Cartões e pagamentos
	api.Get("/cards", auth, h.Page("cards"), h.ListCards)
	api.Post("/cards", auth, h.AddCard)
	api.Delete("/cards/:id", auth, h.RemoveCard)
	api.Post("/checkout", auth, h.Checkout)
	api.Get("/payments", auth, h.ListPayments)
	api.Get("/contracts", auth, h.ListContracts)

	api.Get("/history", auth, h.Page("history"), h.GetHistory)
	api.Get("/activity", auth, h.GetActivity)
}
