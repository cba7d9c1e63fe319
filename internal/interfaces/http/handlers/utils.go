package handlers

import (
	"strconv"
	"strings"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// paramID converte o parâmetro de rota para um id inteiro positivo
func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func invalidParam(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid '" + name + "' parameter"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
}

// currentUser só é chamado em rotas protegidas por RequireSession
func currentUser(c *fiber.Ctx) entities.User {
	user, _ := middleware.CurrentUser(c)
	return user
}
