package main

import (
	"context"
	"fmt"

	"vyria-server/config"
	catalogapi "vyria-server/internal/api/catalog"
	chatapi "vyria-server/internal/api/chat"
	"vyria-server/internal/api/healthcheck"
	corecatalog "vyria-server/internal/core/catalog"
	corechat "vyria-server/internal/core/chat"
	"vyria-server/internal/core/llm"
	"vyria-server/internal/middleware"
	"vyria-server/pkg/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

func main() {
	if err := config.Init("config.yaml"); err != nil {
		logger.Fatal(err, "failed to load config")
	}
	if err := logger.SetLevel(string(config.Cfg.LogLevel)); err != nil {
		logger.Warn("invalid log level %q, keeping info", config.Cfg.LogLevel)
	}

	ctx := context.Background()

	// Provider client is built once and shared by every request.
	completer, err := llm.New(ctx)
	if err != nil {
		logger.Fatal(err, "%v: provider init failed", config.ModuleLLM)
	}
	logger.Info("%v: provider %s ready", config.ModuleLLM, config.Cfg.Provider)

	chatSvc := corechat.NewService(completer)
	catalogSvc := corecatalog.NewService()
	catalogSvc.Seed(ctx)

	app := fiber.New(fiber.Config{
		AppName:     config.Cfg.Server.AppName,
		BodyLimit:   config.Cfg.Server.BodyLimit,
		Concurrency: config.Cfg.Server.Concurrency,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.ConnectionLimit(config.Cfg.Server.Concurrency))
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.Cfg.Cors.AllowOrigins,
		AllowMethods: config.Cfg.Cors.AllowMethods,
		AllowHeaders: config.Cfg.Cors.AllowHeaders,
	}))

	healthcheck.RegisterRoutes(app)
	chatapi.RegisterRoutes(app, chatapi.NewHandler(chatSvc))
	catalogapi.RegisterRoutes(app, catalogapi.NewHandler(catalogSvc))

	addr := fmt.Sprintf(":%d", config.Cfg.Server.Port)
	if err := app.Listen(addr); err != nil {
		logger.Fatal(err, "server error")
	}
}
