package middleware

import (
	"time"

	"github.com/PavaniTiago/advisor-api/internal/infrastructure/logger"
	"github.com/gofiber/fiber/v2"
)

// SlowRequest é o limite a partir do qual a requisição é logada como lenta
const SlowRequest = time.Second

// RequestLogger mede o tempo de resposta de cada rota
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		fields := []interface{}{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration", duration,
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			log.Error("request failed", append(fields, "error", err)...)
		case duration > SlowRequest:
			log.Warn("slow request", fields...)
		default:
			log.Info("request", fields...)
		}
		return err
	}
}
