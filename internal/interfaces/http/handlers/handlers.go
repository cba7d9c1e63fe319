package handlers

import (
	"context"
	"errors"

	"github.com/PavaniTiago/advisor-api/internal/application/usecases"
	"github.com/PavaniTiago/advisor-api/internal/domain/advisory"
	"github.com/PavaniTiago/advisor-api/internal/domain/billing"
	"github.com/PavaniTiago/advisor-api/internal/domain/repositories"
	"github.com/PavaniTiago/advisor-api/internal/domain/suitability"
	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/advisor-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	useCases *usecases.UseCases
	log      *logger.Logger
}

func NewHandlers(useCases *usecases.UseCases, log *logger.Logger) *Handlers {
	if log == nil {
		log = logger.Nop()
	}
	return &Handlers{
		useCases: useCases,
		log:      log.With("component", "http"),
	}
}

func (h *Handlers) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// respondError traduz os erros de domínio em status HTTP
func (h *Handlers) respondError(c *fiber.Ctx, err error) error {
	var (
		missing *suitability.MissingAnswerError
		field   *billing.FieldError
	)
	switch {
	case errors.Is(err, repositories.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecases.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	case errors.Is(err, usecases.ErrEmailTaken),
		errors.Is(err, usecases.ErrNoSuitability),
		errors.Is(err, advisory.ErrConversationEnded):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecases.ErrInvalidInput),
		errors.Is(err, advisory.ErrEmptyMessage):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &missing):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":     err.Error(),
			"questions": missing.QuestionIDs,
		})
	case errors.Is(err, suitability.ErrOutOfRange):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &field):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": field.Message,
			"field": field.Field,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Request cancelled"})
	}

	h.log.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err)
	user, _ := middleware.CurrentUser(c)
	h.useCases.Activity.Failure(c.UserContext(), "internal_error", err, user.UserID)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
