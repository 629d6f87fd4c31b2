package chat

import (
	"context"
	"encoding/json"
	"strings"

	"vyria-server/config"
	corechat "vyria-server/internal/core/chat"
	"vyria-server/pkg/apperror"
	"vyria-server/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	svc *corechat.Service
}

func NewHandler(svc *corechat.Service) *Handler {
	return &Handler{svc: svc}
}

// HandleTurn runs one conversation turn and returns the assembled document.
func (h *Handler) HandleTurn(c fiber.Ctx) error {
	var req corechat.TurnRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatInvalidRequestBody, err.Error())
	}

	req.Language = strings.TrimSpace(req.Language)
	if req.Language == "" {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatMissingLanguage, "language is required")
	}
	level, ok := corechat.NormalizeLevel(req.Level)
	if !ok {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatUnsupportedLevel, "level must be one of A1, A2, B1, B2, C1, C2")
	}
	req.Level = level
	// The opening roleplay turn legitimately carries no history; everything
	// else needs at least one message to reply to.
	if len(req.Messages) == 0 && !req.IsFirstMessage {
		return apperror.BadRequest(config.ModuleChat, c, status.ChatMissingMessages, "messages must not be empty")
	}

	resp, err := h.svc.Run(context.Background(), req)
	if err != nil {
		return apperror.BadGateway(config.ModuleChat, c, status.ChatTurnFailed, "failed to process chat message", err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}
