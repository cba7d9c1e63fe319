package handlers

import (
	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	var req usecases.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	user, token, err := h.useCases.Auth.Register(c.UserContext(), req)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	user, token, err := h.useCases.Auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "token": token})
}

func (h *Handlers) Logout(c *fiber.Ctx) error {
	user := currentUser(c)
	if err := h.useCases.Auth.Logout(c.UserContext(), middleware.SessionToken(c), user.UserID); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me devolve o perfil do usuário logado
func (h *Handlers) Me(c *fiber.Ctx) error {
	user, err := h.useCases.Auth.Profile(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "full_name": user.FullName()})
}

// SessionStatus responde se o token enviado ainda é válido, sem exigir login
func (h *Handlers) SessionStatus(c *fiber.Ctx) error {
	ok, err := h.useCases.Auth.IsAuthenticated(c.UserContext(), middleware.BearerToken(c))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"authenticated": ok})
}
