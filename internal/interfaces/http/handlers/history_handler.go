package handlers

import (
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h *Handlers) GetHistory(c *fiber.Ctx) error {
	history, err := h.useCases.History.Overview(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(history)
}

// GetActivity lista os eventos recentes do usuário logado
func (h *Handlers) GetActivity(c *fiber.Ctx) error {
	events, err := h.useCases.Activity.Recent(c.UserContext(), currentUser(c).UserID, c.QueryInt("limit"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": events})
}

// Page registra a visualização da página antes do handler da rota
func (h *Handlers) Page(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, _ := middleware.CurrentUser(c)
		h.useCases.Activity.PageView(c.UserContext(), name, user.UserID)
		return c.Next()
	}
}
