package catalog

import (
	"context"
	"strings"

	"vyria-server/config"
	corecatalog "vyria-server/internal/core/catalog"
	corechat "vyria-server/internal/core/chat"
	"vyria-server/internal/database/model"
	"vyria-server/pkg/apperror"
	"vyria-server/pkg/apperror/status"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	svc *corecatalog.Service
}

func NewHandler(svc *corecatalog.Service) *Handler {
	return &Handler{svc: svc}
}

type languagesResponse struct {
	Languages []corecatalog.Language `json:"languages"`
	Levels    []string               `json:"levels"`
}

func (h *Handler) HandleLanguages(c fiber.Ctx) error {
	langs, levels := h.svc.Languages()
	return c.JSON(languagesResponse{Languages: langs, Levels: levels})
}

type scenariosResponse struct {
	Scenarios []model.Scenario `json:"scenarios"`
}

func (h *Handler) HandleScenarios(c fiber.Ctx) error {
	level := strings.TrimSpace(c.Query("level"))
	if level != "" {
		normalized, ok := corechat.NormalizeLevel(level)
		if !ok {
			return apperror.BadRequest(config.ModuleCatalog, c, status.CatalogUnsupportedLevel, "level must be one of A1, A2, B1, B2, C1, C2")
		}
		level = normalized
	}

	scenarios, err := h.svc.Scenarios(context.Background(), level)
	if err != nil {
		return apperror.InternalError(config.ModuleCatalog, c, err)
	}
	return c.JSON(scenariosResponse{Scenarios: scenarios})
}

type tipResponse struct {
	Tip string `json:"tip"`
}

func (h *Handler) HandleRandomTip(c fiber.Ctx) error {
	tip := h.svc.RandomTip(context.Background())
	return c.JSON(tipResponse{Tip: tip.Text})
}
