package handlers

import (
	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/domain/billing"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func (h *Handlers) ListPlans(c *fiber.Ctx) error {
	plans, err := h.useCases.Billing.Plans(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": plans})
}

// GetPlan é pública; com sessão, registra a visualização para o usuário
func (h *Handlers) GetPlan(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidParam(c, "id")
	}
	user, _ := middleware.CurrentUser(c)
	plan, err := h.useCases.Billing.Plan(c.UserContext(), user.UserID, id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(plan)
}

func (h *Handlers) Checkout(c *fiber.Ctx) error {
	var req usecases.CheckoutInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	if req.PlanID < 1 {
		return invalidParam(c, "plan_id")
	}
	res, err := h.useCases.Billing.Checkout(c.UserContext(), currentUser(c).UserID, req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *Handlers) ListCards(c *fiber.Ctx) error {
	cards, err := h.useCases.Billing.Cards(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": cards})
}

func (h *Handlers) AddCard(c *fiber.Ctx) error {
	var req billing.CardInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	card, err := h.useCases.Billing.AddCard(c.UserContext(), currentUser(c).UserID, req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(card)
}

func (h *Handlers) RemoveCard(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return invalidParam(c, "id")
	}
	if err := h.useCases.Billing.RemoveCard(c.UserContext(), currentUser(c).UserID, id); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handlers) ListPayments(c *fiber.Ctx) error {
	payments, err := h.useCases.Billing.Payments(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": payments})
}

func (h *Handlers) ListContracts(c *fiber.Ctx) error {
	contracts, err := h.useCases.Billing.Contracts(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": contracts})
}
