package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type requestRecommendationRequest struct {
	SessionID int `json:"session_id"`
}

func (h *Handlers) RequestRecommendation(c *fiber.Ctx) error {
	var req requestRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.SessionID < 1 {
		return invalidParam(c, "session_id")
	}
	view, err := h.useCases.Recommendation.Request(c.UserContext(), currentUser(c).UserID, req.SessionID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(view)
}

func (h *Handlers) ListRecommendations(c *fiber.Ctx) error {
	list, err := h.useCases.Recommendation.List(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *Handlers) GetRecommendation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidParam(c, "id")
	}
	view, err := h.useCases.Recommendation.Get(c.UserContext(), currentUser(c).UserID, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(view)
}

func (h *Handlers) InvestRecommendation(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidParam(c, "id")
	}
	url, err := h.useCases.Recommendation.Invest(c.UserContext(), currentUser(c).UserID, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
