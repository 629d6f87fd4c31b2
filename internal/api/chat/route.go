package chat

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers the conversation-turn endpoint.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Post("/chat", h.HandleTurn)
}
