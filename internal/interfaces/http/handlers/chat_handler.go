package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type sendMessageRequest struct {
	Content string `json:"content"`
}

// StartChat abre uma conversa e devolve a saudação
func (h *Handlers) StartChat(c *fiber.Ctx) error {
	conv := h.useCases.Chat.Start(c.UserContext(), currentUser(c))
	return c.Status(fiber.StatusCreated).JSON(conv)
}

func (h *Handlers) GetChat(c *fiber.Ctx) error {
	conv, err := h.useCases.Chat.Get(c.UserContext(), currentUser(c).UserID, c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(conv)
}

func (h *Handlers) SendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	reply, err := h.useCases.Chat.Send(c.UserContext(), currentUser(c).UserID, c.Params("id"), req.Content)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(reply)
}

// EndChat grava a conversa como sessão
func (h *Handlers) EndChat(c *fiber.Ctx) error {
	sess, err := h.useCases.Chat.End(c.UserContext(), currentUser(c).UserID, c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sess)
}

func (h *Handlers) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.useCases.Chat.Sessions(c.UserContext(), currentUser(c).UserID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": sessions})
}
