package middleware

import (
	"context"
	"strings"

	"github.com/PavaniTiago/advisor-api/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
)

const (
	userKey  = "current_user"
	tokenKey = "session_token"
)

// SessionResolver resolve o token Bearer para o usuário logado
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (entities.User, bool, error)
}

// RequireSession responde 401 quando não há sessão válida
func RequireSession(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		user, ok, err := sessions.CurrentUser(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve session"})
		}
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
		}
		c.Locals(userKey, user)
		c.Locals(tokenKey, token)
		return c.Next()
	}
}

// OptionalSession guarda o usuário se o token for válido e segue em qualquer caso
func OptionalSession(sessions SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token := BearerToken(c); token != "" {
			if user, ok, err := sessions.CurrentUser(c.UserContext(), token); err == nil && ok {
				c.Locals(userKey, user)
				c.Locals(tokenKey, token)
			}
		}
		return c.Next()
	}
}

// CurrentUser devolve o usuário colocado por RequireSession/OptionalSession
func CurrentUser(c *fiber.Ctx) (entities.User, bool) {
	user, ok := c.Locals(userKey).(entities.User)
	return user, ok
}

func SessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals(tokenKey).(string)
	return token
}

// BearerToken lê o token do cabeçalho Authorization; vazio se ausente
func BearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
