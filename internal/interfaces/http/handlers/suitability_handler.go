package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type submitSuitabilityRequest struct {
	// id da pergunta -> value da opção escolhida
	Answers map[int]string `json:"answers"`
}

func (h *Handlers) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(h.useCases.Suitability.Questions(c.UserContext(), currentUser(c).UserID))
}

func (h *Handlers) SubmitSuitability(c *fiber.Ctx) error {
	var req submitSuitabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	saved, err := h.useCases.Suitability.Submit(c.UserContext(), currentUser(c).UserID, req.Answers)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (h *Handlers) ListSuitability(c *fiber.Ctx) error {
	list, err := h.useCases.Suitability.List(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *Handlers) LatestSuitability(c *fiber.Ctx) error {
	latest, err := h.useCases.Suitability.Latest(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(latest)
}
