package catalog

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterRoutes registers the read-only catalog endpoints.
func RegisterRoutes(r fiber.Router, h *Handler) {
	r.Get("/languages", h.HandleLanguages)
	r.Get("/scenarios", h.HandleScenarios)
	r.Get("/tips/random", h.HandleRandomTip)
}
